package hid

import (
	"fmt"
	"strings"
)

// Dump renders the tree as a nested, indented diagnostic listing (§4.4). It
// is stable enough to diff in tests: no trailing whitespace, "\n"-terminated
// lines, two spaces of indent per nesting level.
func (t *Tree) Dump() string {
	var b strings.Builder
	for _, child := range t.Root.Children {
		dumpCollection(&b, child, 0)
	}
	return b.String()
}

func dumpCollection(b *strings.Builder, c *Collection, depth int) {
	pad := strings.Repeat("  ", depth)
	b.WriteString(pad)
	b.WriteString(fmt.Sprintf("Collection(%s)", collectionTypeName(c.Type)))
	if c.UsagePage != 0 {
		b.WriteString(fmt.Sprintf(" UsagePage=0x%04X", c.UsagePage))
	}
	if c.Usage != 0 {
		b.WriteString(fmt.Sprintf(" Usage=0x%02X", c.Usage))
	}
	b.WriteString("\n")

	fieldPad := strings.Repeat("  ", depth+1)
	for _, f := range c.Fields {
		b.WriteString(fieldPad)
		b.WriteString(dumpField(f))
		b.WriteString("\n")
	}

	for _, child := range c.Children {
		dumpCollection(b, child, depth+1)
	}
}

func dumpField(f *Field) string {
	usages := make([]string, len(f.Usages))
	for i, u := range f.Usages {
		usages[i] = fmt.Sprintf("0x%X", u)
	}
	return fmt.Sprintf("%s ReportID=%d Size=%d Count=%d Flags=0x%02X Usages=[%s]",
		f.Kind, f.ReportID, f.ReportSizeBits, f.ReportCount, f.Flags, strings.Join(usages, ","))
}

func collectionTypeName(t uint8) string {
	switch t {
	case CollectionPhysical:
		return "Physical"
	case CollectionApplication:
		return "Application"
	case CollectionLogical:
		return "Logical"
	case CollectionReport:
		return "Report"
	case CollectionNamedArray:
		return "NamedArray"
	case CollectionUsageSwitch:
		return "UsageSwitch"
	case CollectionUsageModifier:
		return "UsageModifier"
	default:
		return "Reserved"
	}
}
