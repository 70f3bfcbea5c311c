package hid

import (
	"fmt"
	"strings"
)

// rawColumnWidth is where the "// " comment column is meant to start, per
// §6's "Column 1 ... padded to column 24".
const rawColumnWidth = 24

// Annotate re-tokenizes data independently of Parse and renders the
// conventional HID-documentation byte-by-byte listing described in §4.5.
// It does not consult a Tree; its depth counter and Usage Page tracker are
// its own, separate state.
func Annotate(data []byte) string {
	var b strings.Builder
	depth := 0
	var currentUsagePage uint16

	tok := newTokenizer(data)
	for {
		start := tok.pos
		item, ok := tok.next()
		if !ok {
			break
		}
		raw := data[start:tok.pos]

		var desc string
		switch {
		case item.IsLongItem():
			desc = "Reserved"
		case item.Type == ItemMain:
			desc, depth = annotateMain(item, depth)
		case item.Type == ItemGlobal:
			desc = annotateGlobal(item, &currentUsagePage)
		case item.Type == ItemLocal:
			desc = annotateLocal(item, currentUsagePage)
		default:
			desc = fmt.Sprintf("Reserved (tag=0x%X)", item.Tag)
		}

		writeAnnotatedLine(&b, raw, depth, desc, item.Type == ItemMain && item.Tag == TagCollection)
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("// %d bytes\n", len(data)))
	return b.String()
}

// writeAnnotatedLine appends one "0xNN, 0xNN  // indent desc\n" line. The
// depth passed in is the depth to render the indent at: for a Collection
// item this must be the depth *before* increment (handled by the caller
// already having returned the post-increment depth from annotateMain, so we
// accept an explicit wasCollectionOpen flag to render at depth-1 in that
// case).
func writeAnnotatedLine(b *strings.Builder, raw []byte, depth int, desc string, wasCollectionOpen bool) {
	renderDepth := depth
	if wasCollectionOpen {
		renderDepth = depth - 1
	}
	if renderDepth < 0 {
		renderDepth = 0
	}

	col1 := formatRawBytes(raw)
	b.WriteString(col1)
	if len(col1) < rawColumnWidth {
		b.WriteString(strings.Repeat(" ", rawColumnWidth-len(col1)))
	}
	b.WriteString("// ")
	b.WriteString(strings.Repeat("  ", renderDepth))
	b.WriteString(desc)
	b.WriteString("\n")
}

func formatRawBytes(raw []byte) string {
	parts := make([]string, len(raw))
	for i, by := range raw {
		parts[i] = fmt.Sprintf("0x%02X", by)
	}
	return strings.Join(parts, ", ")
}

// annotateMain returns the description and the depth to use for subsequent
// items. Collection increments depth after describing itself; End Collection
// decrements (floor 0) before describing itself.
func annotateMain(item Item, depth int) (string, int) {
	switch item.Tag {
	case TagCollection:
		desc := fmt.Sprintf("Collection (%s)", collectionTypeLabel(uint8(item.Data&0xFF)))
		return desc, depth + 1
	case TagEndCollection:
		if depth > 0 {
			depth--
		}
		return "End Collection", depth
	case TagInput:
		return "Input " + flagDescription(Input, uint8(item.Data&0xFF)), depth
	case TagOutput:
		return "Output " + flagDescription(Output, uint8(item.Data&0xFF)), depth
	case TagFeature:
		return "Feature " + flagDescription(Feature, uint8(item.Data&0xFF)), depth
	default:
		return fmt.Sprintf("Main (tag=0x%X)", item.Tag), depth
	}
}

func annotateGlobal(item Item, currentUsagePage *uint16) string {
	switch item.Tag {
	case TagUsagePage:
		page := uint16(item.Data & 0xFFFF)
		*currentUsagePage = page
		return fmt.Sprintf("Usage Page (%s)", usagePageName(page))
	case TagLogicalMin:
		return fmt.Sprintf("Logical Minimum (%d)", signExtend(item.Data, item.Size))
	case TagLogicalMax:
		return fmt.Sprintf("Logical Maximum (%d)", signExtend(item.Data, item.Size))
	case TagPhysicalMin:
		return fmt.Sprintf("Physical Minimum (%d)", signExtend(item.Data, item.Size))
	case TagPhysicalMax:
		return fmt.Sprintf("Physical Maximum (%d)", signExtend(item.Data, item.Size))
	case TagUnitExponent:
		return fmt.Sprintf("Unit Exponent (%d)", signExtend(item.Data, item.Size))
	case TagUnit:
		return "Unit (System: SI Linear, Time: Seconds)"
	case TagReportSize:
		return fmt.Sprintf("Report Size (%d)", item.Data)
	case TagReportID:
		return fmt.Sprintf("Report ID (%d)", item.Data)
	case TagReportCount:
		return fmt.Sprintf("Report Count (%d)", item.Data)
	case TagPush:
		return "Push"
	case TagPop:
		return "Pop"
	default:
		return fmt.Sprintf("Global (tag=0x%X)", item.Tag)
	}
}

func annotateLocal(item Item, currentUsagePage uint16) string {
	switch item.Tag {
	case TagUsage:
		return fmt.Sprintf("Usage (%s)", usageName(currentUsagePage, item.Data))
	case TagUsageMinimum:
		return fmt.Sprintf("Usage Minimum (0x%X)", item.Data)
	case TagUsageMaximum:
		return fmt.Sprintf("Usage Maximum (0x%X)", item.Data)
	default:
		return fmt.Sprintf("Local (tag=0x%X)", item.Tag)
	}
}
