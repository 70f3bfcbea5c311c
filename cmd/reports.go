package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xiaosa-zhz/hidtool/hid"
	"github.com/xiaosa-zhz/hidtool/internal/hexdump"
)

func newSendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "send <device> <report-id> <hex-bytes>",
		Short: "write an output report",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			dev, reportID, payload, err := openForReport(args)
			if err != nil {
				return err
			}
			defer dev.Close()
			return dev.SetOutputReport(append([]byte{reportID}, payload...))
		},
	}
}

func newRecvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recv <device> <report-id> <length>",
		Short: "read an input report",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return readReport(args, func(dev *hid.Device, reportID byte, length int) ([]byte, error) {
				return dev.GetInputReport(reportID, length)
			})
		},
	}
}

func newFeatureGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "feature-get <device> <report-id> <length>",
		Short: "read a feature report",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return readReport(args, func(dev *hid.Device, reportID byte, length int) ([]byte, error) {
				return dev.GetFeatureReport(reportID, length)
			})
		},
	}
}

func newFeatureSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "feature-set <device> <report-id> <hex-bytes>",
		Short: "write a feature report",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			dev, reportID, payload, err := openForReport(args)
			if err != nil {
				return err
			}
			defer dev.Close()
			return dev.SetFeatureReport(append([]byte{reportID}, payload...))
		},
	}
}

// openForReport opens args[0]'s device and parses a report ID (args[1]) and
// hex payload (args[2]), the shared shape of send/feature-set.
func openForReport(args []string) (*hid.Device, byte, []byte, error) {
	dev, err := hid.Open(args[0])
	if err != nil {
		return nil, 0, nil, err
	}
	reportID, err := parseReportID(args[1])
	if err != nil {
		dev.Close()
		return nil, 0, nil, err
	}
	payload, err := parseHexBytes(args[2])
	if err != nil {
		dev.Close()
		return nil, 0, nil, err
	}
	return dev, reportID, payload, nil
}

// readReport opens args[0]'s device, parses a report ID (args[1]) and
// length (args[2]), invokes get, and hex-dumps the result — the shared
// shape of recv/feature-get.
func readReport(args []string, get func(dev *hid.Device, reportID byte, length int) ([]byte, error)) error {
	dev, err := hid.Open(args[0])
	if err != nil {
		return err
	}
	defer dev.Close()

	reportID, err := parseReportID(args[1])
	if err != nil {
		return err
	}
	length, err := parseLength(args[2])
	if err != nil {
		return err
	}

	data, err := get(dev, reportID, length)
	if err != nil {
		return err
	}
	return hexdump.Dump(os.Stdout, data)
}
