package hid

import "fmt"

// usagePageNames covers the common HID Usage Tables pages referenced by
// §4.5; anything else (besides the vendor-defined range) falls back to hex.
var usagePageNames = map[uint16]string{
	0x01: "Generic Desktop",
	0x07: "Keyboard/Keypad",
	0x08: "LEDs",
	0x09: "Button",
	0x0A: "Ordinal",
	0x0C: "Consumer",
	0x0D: "Digitizer",
}

func usagePageName(page uint16) string {
	if name, ok := usagePageNames[page]; ok {
		return name
	}
	if page >= 0xFF00 {
		return fmt.Sprintf("Vendor Defined 0x%04X", page)
	}
	return fmt.Sprintf("0x%02X", page)
}

// usageNames covers a small sample of the HID Usage Tables, enough to
// annotate the common Generic Desktop and Button usages exercised in
// practice. Unknown usages fall back to hex, per §4.5 and §9.
var usageNames = map[uint16]map[uint32]string{
	0x01: {
		0x01: "Pointer",
		0x02: "Mouse",
		0x04: "Joystick",
		0x05: "Game Pad",
		0x06: "Keyboard",
		0x07: "Keypad",
		0x30: "X",
		0x31: "Y",
		0x32: "Z",
		0x33: "Rx",
		0x34: "Ry",
		0x35: "Rz",
		0x38: "Wheel",
		0x80: "System Control",
		0x81: "System Power Down",
		0x82: "System Sleep",
		0x83: "System Wake Up",
	},
	0x07: {
		0x00: "No Event",
		0xE0: "Keyboard LeftControl",
		0xE1: "Keyboard LeftShift",
		0xE2: "Keyboard LeftAlt",
		0xE3: "Keyboard Left GUI",
	},
	0x08: {
		0x01: "Num Lock",
		0x02: "Caps Lock",
		0x03: "Scroll Lock",
	},
	0x0C: {
		0x00: "Unassigned",
		0xB0: "Play",
		0xB5: "Scan Next Track",
		0xB6: "Scan Previous Track",
		0xB7: "Stop",
		0xCD: "Play/Pause",
		0xE2: "Mute",
		0xE9: "Volume Increment",
		0xEA: "Volume Decrement",
	},
}

func usageName(page uint16, usage uint32) string {
	if byPage, ok := usageNames[page]; ok {
		if name, ok := byPage[usage]; ok {
			return name
		}
	}
	return fmt.Sprintf("0x%X", usage)
}

// collectionTypeLabel is the annotated-renderer spelling, distinct from
// dumpCollection's compact collectionTypeName only in that it is always
// used inside "Collection (<name>)".
func collectionTypeLabel(t uint8) string {
	return collectionTypeName(t)
}

// flagBitLabels holds, per bit position 0..6, the {clear, set} label pair
// shared by Input/Output/Feature. Bit 7's pair depends on Kind and is
// resolved separately (flagBit7Labels).
var flagBitLabels = [7][2]string{
	{"Data", "Constant"},
	{"Array", "Variable"},
	{"Absolute", "Relative"},
	{"No Wrap", "Wrap"},
	{"Linear", "Non-linear"},
	{"Preferred State", "No Preferred"},
	{"No Null position", "Null state"},
}

func flagBit7Labels(kind FieldKind) [2]string {
	if kind == Input {
		return [2]string{"Bit Field", "Buffered Bytes"}
	}
	return [2]string{"Non-volatile", "Volatile"}
}

// flagDescription renders the parenthesized, comma-separated flag-token
// list for an Input/Output/Feature item, per §4.5.
func flagDescription(kind FieldKind, flags uint8) string {
	tokens := make([]string, 0, 8)
	for bit := 0; bit < 7; bit++ {
		pair := flagBitLabels[bit]
		if flags&(1<<uint(bit)) != 0 {
			tokens = append(tokens, pair[1])
		} else {
			tokens = append(tokens, pair[0])
		}
	}
	bit7 := flagBit7Labels(kind)
	if flags&(1<<7) != 0 {
		tokens = append(tokens, bit7[1])
	} else {
		tokens = append(tokens, bit7[0])
	}
	out := "("
	for i, tok := range tokens {
		if i > 0 {
			out += ","
		}
		out += tok
	}
	return out + ")"
}
