package hid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var minimalMouse = []byte{
	0x05, 0x01, 0x09, 0x02, 0xA1, 0x01, 0x09, 0x01, 0xA1, 0x00,
	0x05, 0x09, 0x19, 0x01, 0x29, 0x03, 0x15, 0x00, 0x25, 0x01,
	0x95, 0x03, 0x75, 0x01, 0x81, 0x02, 0x95, 0x01, 0x75, 0x05,
	0x81, 0x03, 0xC0, 0xC0,
}

func treeDiff(t *testing.T, got, want *Collection) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmptyInput(t *testing.T) {
	tree := Parse(nil)
	require.NotNil(t, tree.Root)
	require.Empty(t, tree.Root.Children)
	require.Empty(t, tree.Root.Fields)
	require.Empty(t, tree.FindByReportID(0))
	require.Equal(t, "", tree.Dump())
}

func TestParseMinimalMouse(t *testing.T) {
	tree := Parse(minimalMouse)

	want := &Collection{
		Children: []*Collection{
			{
				Type:      CollectionApplication,
				UsagePage: 0x01,
				Usage:     0x02,
				Children: []*Collection{
					{
						Type:      CollectionPhysical,
						UsagePage: 0x01,
						Usage:     0x01,
						Fields: []*Field{
							{
								Kind:           Input,
								UsagePage:      0x09,
								Usages:         []uint32{1, 2, 3},
								ReportCount:    3,
								ReportSizeBits: 1,
								LogicalMin:     0,
								LogicalMax:     1,
								Flags:          0x02,
							},
							{
								Kind:           Input,
								UsagePage:      0x09,
								ReportCount:    1,
								ReportSizeBits: 5,
								LogicalMin:     0,
								LogicalMax:     1,
								Flags:          0x03,
							},
						},
					},
				},
			},
		},
	}

	treeDiff(t, tree.Root, want)
}

func TestParseTruncatedTail(t *testing.T) {
	truncated := minimalMouse[:len(minimalMouse)-1]
	require.NotPanics(t, func() {
		tree := Parse(truncated)
		require.Len(t, tree.Root.Children, 1)
		app := tree.Root.Children[0]
		require.Equal(t, CollectionApplication, app.Type)
		require.Len(t, app.Children, 1)
	})
}

func reportIDFeatureDescriptor() []byte {
	var d []byte
	appendItem := func(prefix byte, data ...byte) {
		d = append(d, prefix)
		d = append(d, data...)
	}
	for _, id := range []byte{1, 2, 3} {
		appendItem(0x85, id)       // Report ID
		appendItem(0x75, 0x08)     // Report Size (8)
		appendItem(0x95, 0x01)     // Report Count (1)
		appendItem(0xB1, 0x02)     // Feature (Data,Var,Abs)
	}
	return d
}

func TestParseReportIDIndex(t *testing.T) {
	tree := Parse(reportIDFeatureDescriptor())

	got2 := tree.FindByReportID(2)
	require.Len(t, got2, 1)
	require.Equal(t, uint8(2), got2[0].ReportID)
	require.Equal(t, Feature, got2[0].Kind)

	require.Empty(t, tree.FindByReportID(99))
}

func pushPopDescriptor() []byte {
	return []byte{
		0x05, 0x01, // Usage Page (0x01)
		0xA4,       // Push
		0x05, 0x09, // Usage Page (0x09)
		0x81, 0x02, // Input
		0xB4,       // Pop
		0x81, 0x02, // Input
	}
}

func TestParsePushPop(t *testing.T) {
	tree := Parse(pushPopDescriptor())
	require.Len(t, tree.Root.Fields, 2)
	require.Equal(t, uint16(0x09), tree.Root.Fields[0].UsagePage)
	require.Equal(t, uint16(0x01), tree.Root.Fields[1].UsagePage)
}

func TestParseUsageRangeTakesPrecedence(t *testing.T) {
	data := []byte{
		0x09, 0x05, // Usage (0x05) - should be overridden by the range
		0x19, 0x01, // Usage Minimum (1)
		0x29, 0x03, // Usage Maximum (3)
		0x81, 0x02, // Input
	}
	tree := Parse(data)
	require.Len(t, tree.Root.Fields, 1)
	require.Equal(t, []uint32{1, 2, 3}, tree.Root.Fields[0].Usages)
}

func TestParseUsageRangeInvertedIsEmpty(t *testing.T) {
	data := []byte{
		0x19, 0x05, // Usage Minimum (5)
		0x29, 0x01, // Usage Maximum (1) < Minimum
		0x81, 0x02, // Input
	}
	tree := Parse(data)
	require.Len(t, tree.Root.Fields, 1)
	require.Empty(t, tree.Root.Fields[0].Usages)
}

func TestParseEndCollectionAtRootIsNoOp(t *testing.T) {
	data := []byte{0xC0, 0xC0, 0x81, 0x02}
	require.NotPanics(t, func() {
		tree := Parse(data)
		require.Len(t, tree.Root.Fields, 1)
	})
}

func TestParsePopOnEmptyStackIsNoOp(t *testing.T) {
	data := []byte{0xB4, 0x05, 0x01, 0x81, 0x02}
	tree := Parse(data)
	require.Len(t, tree.Root.Fields, 1)
	require.Equal(t, uint16(0x01), tree.Root.Fields[0].UsagePage)
}
