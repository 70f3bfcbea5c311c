// Package cmd implements the hidtool command-line front end: sub-command
// dispatch, argument parsing, and output-file routing (§4.7). It is a thin
// collaborator over the hid package; all descriptor decoding happens there.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// deviceEnvVar lets a default device path be set once per shell, following
// the teacher's AEGIS_KDBX/AEGIS_KEYRING environment-fallback convention.
const deviceEnvVar = "HIDTOOL_DEVICE"

// New builds the root cobra.Command tree.
func New(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "hidtool",
		Short:         "inspect and exchange reports with a raw HID device",
		Version:       version,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDumpCommand(),
		newDumpHIDCommand(),
		newSendCommand(),
		newRecvCommand(),
		newFeatureGetCommand(),
		newFeatureSetCommand(),
	)
	return root
}

// Execute runs the command tree and returns a process exit code, handling
// top-level error reporting per §7: "Error: <message>" to stdout, exit 1.
func Execute(version string) int {
	root := New(version)
	if err := root.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err)
		return 1
	}
	return 0
}

// resolveDevicePath returns args[0] if present, else the HIDTOOL_DEVICE
// environment variable, else an error.
func resolveDevicePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if v := os.Getenv(deviceEnvVar); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("device path required (positional argument or %s)", deviceEnvVar)
}
