// Package hexdump renders byte slices in the conventional offset/hex/ASCII
// layout, for echoing report payloads and raw descriptor bytes.
package hexdump

import (
	"fmt"
	"io"
)

const bytesPerLine = 16

// Dump writes data to w as 16-byte lines: an 8-hex-digit offset, the hex
// bytes grouped 8-and-8, and an ASCII sidebar with non-printable bytes
// rendered as '.'.
func Dump(w io.Writer, data []byte) error {
	if len(data) == 0 {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}

	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := formatLine(offset, data[offset:end])
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatLine(offset int, chunk []byte) string {
	out := fmt.Sprintf("%08x  ", offset)
	for i := 0; i < bytesPerLine; i++ {
		if i < len(chunk) {
			out += fmt.Sprintf("%02x ", chunk[i])
		} else {
			out += "   "
		}
		if i == 7 {
			out += " "
		}
	}
	out += " |"
	for _, b := range chunk {
		if b >= 32 && b <= 126 {
			out += string(b)
		} else {
			out += "."
		}
	}
	out += "|\n"
	return out
}
