package hid

// ItemType is the 2-bit type field of a short HID item.
type ItemType uint8

const (
	ItemMain ItemType = iota
	ItemGlobal
	ItemLocal
	ItemReserved
)

// Main item tags.
const (
	TagCollection    uint8 = 0x0A
	TagEndCollection uint8 = 0x0C
	TagInput         uint8 = 0x08
	TagOutput        uint8 = 0x09
	TagFeature       uint8 = 0x0B
)

// Global item tags.
const (
	TagUsagePage     uint8 = 0x00
	TagLogicalMin    uint8 = 0x01
	TagLogicalMax    uint8 = 0x02
	TagPhysicalMin   uint8 = 0x03
	TagPhysicalMax   uint8 = 0x04
	TagUnitExponent  uint8 = 0x05
	TagUnit          uint8 = 0x06
	TagReportSize    uint8 = 0x07
	TagReportID      uint8 = 0x08
	TagReportCount   uint8 = 0x09
	TagPush          uint8 = 0x0A
	TagPop           uint8 = 0x0B
)

// Local item tags.
const (
	TagUsage        uint8 = 0x00
	TagUsageMinimum uint8 = 0x01
	TagUsageMaximum uint8 = 0x02
)

// longItemSize and longItemTag mark the sentinel produced for a skipped Long Item.
const (
	longItemSize   = 0xFF
	longItemTag    = 0xFF
	longItemPrefix = 0xFE
)

// Item is one tokenized unit of a HID report descriptor byte stream.
type Item struct {
	Type ItemType
	Tag  uint8
	Size uint8 // 0, 1, 2, 4, or longItemSize for a skipped Long Item
	Data uint32
}

// IsLongItem reports whether i was produced by skipping a Long Item.
func (i Item) IsLongItem() bool {
	return i.Type == ItemReserved && i.Size == longItemSize
}

// tokenizer walks a descriptor byte slice, yielding one Item per call to next.
type tokenizer struct {
	buf []byte
	pos int
}

func newTokenizer(buf []byte) *tokenizer {
	return &tokenizer{buf: buf}
}

func (t *tokenizer) done() bool {
	return t.pos >= len(t.buf)
}

// next returns the next item and advances the cursor. ok is false once the
// stream is exhausted; next never reads past the end of the buffer.
func (t *tokenizer) next() (item Item, ok bool) {
	if t.pos >= len(t.buf) {
		return Item{}, false
	}
	prefix := t.buf[t.pos]
	t.pos++

	if prefix == longItemPrefix {
		return t.skipLongItem()
	}

	sizeCode := prefix & 0b11
	size := uint8(sizeCode)
	if sizeCode == 3 {
		size = 4
	}
	itemType := ItemType((prefix >> 2) & 0b11)
	tag := (prefix >> 4) & 0b1111

	remaining := len(t.buf) - t.pos
	n := int(size)
	if n > remaining {
		n = remaining
	}
	var data uint32
	for i := 0; i < n; i++ {
		data |= uint32(t.buf[t.pos+i]) << (8 * uint(i))
	}
	t.pos += n

	return Item{Type: itemType, Tag: tag, Size: size, Data: data}, true
}

// skipLongItem consumes the data-size and tag bytes of a Long Item, then
// advances past its payload without interpreting it.
func (t *tokenizer) skipLongItem() (Item, bool) {
	if t.pos >= len(t.buf) {
		return Item{Type: ItemReserved, Tag: longItemTag, Size: longItemSize}, true
	}
	dataSize := int(t.buf[t.pos])
	t.pos++
	if t.pos < len(t.buf) {
		t.pos++ // long item tag byte
	}
	remaining := len(t.buf) - t.pos
	skip := dataSize
	if skip > remaining {
		skip = remaining
	}
	t.pos += skip
	return Item{Type: ItemReserved, Tag: longItemTag, Size: longItemSize}, true
}

// signExtend reinterprets the low `size` bytes of data as a signed integer of
// that width and sign-extends it into an int32. size 0 yields 0.
func signExtend(data uint32, size uint8) int32 {
	switch size {
	case 1:
		return int32(int8(data))
	case 2:
		return int32(int16(data))
	case 4:
		return int32(data)
	default:
		return 0
	}
}
