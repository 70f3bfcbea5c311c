package hid

import "testing"

func TestTokenizerShortItems(t *testing.T) {
	// Usage Page (Generic Desktop): 0x05, 0x01
	tok := newTokenizer([]byte{0x05, 0x01})
	item, ok := tok.next()
	if !ok {
		t.Fatal("expected an item")
	}
	if item.Type != ItemGlobal || item.Tag != TagUsagePage || item.Size != 1 || item.Data != 1 {
		t.Fatalf("got %+v", item)
	}
	if _, ok := tok.next(); ok {
		t.Fatal("expected end of stream")
	}
}

func TestTokenizerFourByteSize(t *testing.T) {
	// bSizeCode 3 means 4 bytes of data.
	tok := newTokenizer([]byte{0b0000_0011, 0x01, 0x02, 0x03, 0x04})
	item, ok := tok.next()
	if !ok || item.Size != 4 || item.Data != 0x04030201 {
		t.Fatalf("got %+v ok=%v", item, ok)
	}
}

func TestTokenizerTruncatedData(t *testing.T) {
	// Claims 2 bytes of data but only 1 remains.
	tok := newTokenizer([]byte{0b0000_0010, 0xAB})
	item, ok := tok.next()
	if !ok {
		t.Fatal("expected a best-effort item")
	}
	if item.Data != 0xAB {
		t.Fatalf("got data=0x%X", item.Data)
	}
	if !tok.done() {
		t.Fatal("expected stream to be exhausted")
	}
}

func TestTokenizerLongItemSkip(t *testing.T) {
	// Long item escape with 3 bytes of payload.
	data := []byte{0xFE, 0x03, 0xAA, 0x11, 0x22, 0x33, 0x05, 0x01}
	tok := newTokenizer(data)

	item, ok := tok.next()
	if !ok || !item.IsLongItem() {
		t.Fatalf("expected a long item marker, got %+v ok=%v", item, ok)
	}
	if tok.pos != 6 {
		t.Fatalf("expected cursor at 6 after long item, got %d", tok.pos)
	}

	item, ok = tok.next()
	if !ok || item.Type != ItemGlobal || item.Tag != TagUsagePage || item.Data != 1 {
		t.Fatalf("got %+v ok=%v", item, ok)
	}
}

func TestSignExtend(t *testing.T) {
	cases := []struct {
		data uint32
		size uint8
		want int32
	}{
		{0x00, 0, 0},
		{0xFF, 0, 0}, // width 0 always yields 0
		{0x7F, 1, 127},
		{0x80, 1, -128},
		{0x7FFF, 2, 32767},
		{0x8000, 2, -32768},
		{0xFFFFFFFF, 4, -1},
	}
	for _, c := range cases {
		if got := signExtend(c.data, c.size); got != c.want {
			t.Errorf("signExtend(0x%X, %d) = %d, want %d", c.data, c.size, got, c.want)
		}
	}
}
