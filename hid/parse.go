package hid

// Parse decodes a raw HID report descriptor into a Tree. Parse never fails:
// truncated or malformed input yields a best-effort tree (§4.2's "Failure
// semantics"). The returned Tree retains data (see Tree.SourceBytes).
func Parse(data []byte) *Tree {
	root := &Collection{}
	tree := &Tree{
		Root:        root,
		index:       make(map[uint8][]*Field),
		SourceBytes: data,
	}

	var global globalState
	var globalStack []globalState
	var local localState
	collStack := []*Collection{root}

	tok := newTokenizer(data)
	for {
		item, ok := tok.next()
		if !ok {
			break
		}

		switch item.Type {
		case ItemMain:
			top := collStack[len(collStack)-1]
			switch item.Tag {
			case TagCollection:
				child := &Collection{
					Type:      uint8(item.Data & 0xFF),
					UsagePage: global.UsagePage,
					Usage:     local.lastUsage(),
				}
				top.Children = append(top.Children, child)
				collStack = append(collStack, child)
			case TagEndCollection:
				if len(collStack) > 1 {
					collStack = collStack[:len(collStack)-1]
				}
			case TagInput, TagOutput, TagFeature:
				field := &Field{
					Kind:           kindFromTag(item.Tag),
					ReportID:       global.ReportID,
					UsagePage:      global.UsagePage,
					Usages:         local.resolveUsages(),
					ReportSizeBits: global.ReportSizeBits,
					ReportCount:    global.ReportCount,
					LogicalMin:     global.LogicalMin,
					LogicalMax:     global.LogicalMax,
					PhysicalMin:    global.PhysicalMin,
					PhysicalMax:    global.PhysicalMax,
					Unit:           global.Unit,
					UnitExponent:   global.UnitExponent,
					Flags:          uint8(item.Data & 0xFF),
				}
				top.Fields = append(top.Fields, field)
				tree.index[field.ReportID] = append(tree.index[field.ReportID], field)
			}
			local.clear()

		case ItemGlobal:
			switch item.Tag {
			case TagPush:
				globalStack = append(globalStack, global)
			case TagPop:
				if n := len(globalStack); n > 0 {
					global = globalStack[n-1]
					globalStack = globalStack[:n-1]
				}
			default:
				global.applyGlobal(item)
			}

		case ItemLocal:
			local.applyLocal(item)

		case ItemReserved:
			// Ignored; does not clear local state.
		}
	}

	return tree
}

func kindFromTag(tag uint8) FieldKind {
	switch tag {
	case TagOutput:
		return Output
	case TagFeature:
		return Feature
	default:
		return Input
	}
}
