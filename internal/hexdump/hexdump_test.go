package hexdump

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, nil))
	require.Equal(t, "(empty)\n", buf.String())
}

func TestDumpSingleLine(t *testing.T) {
	var buf bytes.Buffer
	data := []byte("HELLO")
	require.NoError(t, Dump(&buf, data))
	require.Contains(t, buf.String(), "00000000  48 45 4c 4c 4f")
	require.Contains(t, buf.String(), "|HELLO|")
}

func TestDumpMultiLineOffsets(t *testing.T) {
	var buf bytes.Buffer
	data := make([]byte, 20)
	require.NoError(t, Dump(&buf, data))
	require.Contains(t, buf.String(), "00000000  ")
	require.Contains(t, buf.String(), "00000010  ")
}

func TestDumpNonPrintableAsDot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, []byte{0x00, 0x01, 0x41}))
	require.Contains(t, buf.String(), "|..A|")
}
