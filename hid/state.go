package hid

// globalState is the persistent parser state carried forward across items,
// snapshotted into each Field at the moment of emission and saved/restored
// wholesale by Push/Pop.
type globalState struct {
	UsagePage      uint16
	ReportID       uint8
	ReportSizeBits uint32
	ReportCount    uint32
	LogicalMin     int32
	LogicalMax     int32
	PhysicalMin    int32
	PhysicalMax    int32
	Unit           uint32
	UnitExponent   int8
}

// localState is transient state, cleared after every Main item.
type localState struct {
	Usages        []uint32
	HasUsageRange bool
	UsageMin      uint32
	UsageMax      uint32
}

func (l *localState) clear() {
	l.Usages = nil
	l.HasUsageRange = false
	l.UsageMin = 0
	l.UsageMax = 0
}

// resolveUsages materializes the Usages list for a Field emitted from the
// current local state, per §3's "range takes precedence" tie-break.
func (l *localState) resolveUsages() []uint32 {
	if l.HasUsageRange {
		if l.UsageMax < l.UsageMin {
			return nil
		}
		out := make([]uint32, 0, l.UsageMax-l.UsageMin+1)
		for u := l.UsageMin; u <= l.UsageMax; u++ {
			out = append(out, u)
		}
		return out
	}
	if len(l.Usages) == 0 {
		return nil
	}
	out := make([]uint32, len(l.Usages))
	copy(out, l.Usages)
	return out
}

// lastUsage returns the most recently pushed local usage, or 0 if none was
// set — used for a Collection item's own Usage.
func (l *localState) lastUsage() uint32 {
	if len(l.Usages) == 0 {
		return 0
	}
	return l.Usages[len(l.Usages)-1]
}

// applyGlobal updates g in place for a Global item. Unknown tags are ignored.
func (g *globalState) applyGlobal(item Item) {
	switch item.Tag {
	case TagUsagePage:
		g.UsagePage = uint16(item.Data & 0xFFFF)
	case TagLogicalMin:
		g.LogicalMin = signExtend(item.Data, item.Size)
	case TagLogicalMax:
		g.LogicalMax = signExtend(item.Data, item.Size)
	case TagPhysicalMin:
		g.PhysicalMin = signExtend(item.Data, item.Size)
	case TagPhysicalMax:
		g.PhysicalMax = signExtend(item.Data, item.Size)
	case TagUnitExponent:
		g.UnitExponent = int8(signExtend(item.Data, item.Size))
	case TagUnit:
		g.Unit = item.Data
	case TagReportSize:
		g.ReportSizeBits = item.Data
	case TagReportID:
		g.ReportID = uint8(item.Data & 0xFF)
	case TagReportCount:
		g.ReportCount = item.Data
	}
}

// applyLocal updates l in place for a Local item. Unmodeled local tags
// (string/designator indices, delimiter) are accepted as no-ops and, per
// §4.2, do not clear local state — the switch below simply has no case for
// them, so they leave l unchanged.
func (l *localState) applyLocal(item Item) {
	switch item.Tag {
	case TagUsage:
		l.Usages = append(l.Usages, item.Data)
	case TagUsageMinimum:
		l.HasUsageRange = true
		l.UsageMin = item.Data
	case TagUsageMaximum:
		l.HasUsageRange = true
		l.UsageMax = item.Data
	}
}
