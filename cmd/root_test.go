package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// execRoot runs New("test") with args, capturing combined stdout+stderr
// cobra output (usage blocks go through cmd.OutOrStderr()/ErrOrStderr()).
func execRoot(args ...string) (out string, err error) {
	root := New("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestArgCountErrorStillPrintsUsage(t *testing.T) {
	// "send" requires exactly 3 args; cobra's own Args validator rejects
	// this before RunE ever runs, so usage must still be printed.
	out, err := execRoot("send", "/dev/hidraw0")
	require.Error(t, err)
	require.Contains(t, out, "Usage:")
}

func TestRuntimeErrorSuppressesUsage(t *testing.T) {
	// A well-formed argument list that fails inside RunE (device open
	// failure) must not print the usage block.
	out, err := execRoot("send", "/nonexistent-hidtool-test-device", "1", "AA")
	require.Error(t, err)
	require.NotContains(t, out, "Usage:")
}

func TestDumpHasRawFlag(t *testing.T) {
	c := newDumpCommand()
	require.NotNil(t, c.Flags().Lookup("raw"))
}

func TestDumpHIDHasRawFlag(t *testing.T) {
	c := newDumpHIDCommand()
	require.NotNil(t, c.Flags().Lookup("raw"))
}
