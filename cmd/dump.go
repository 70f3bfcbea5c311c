package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiaosa-zhz/hidtool/hid"
	"github.com/xiaosa-zhz/hidtool/internal/dumpfile"
	"github.com/xiaosa-zhz/hidtool/internal/hexdump"
)

func newDumpCommand() *cobra.Command {
	var out string
	var raw bool
	c := &cobra.Command{
		Use:   "dump [device]",
		Short: "decode the device's HID report descriptor as a collection/field tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runDump(args, out, false, raw)
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default stdout)")
	c.Flags().BoolVar(&raw, "raw", false, "also echo the raw descriptor bytes as a hex dump")
	return c
}

func newDumpHIDCommand() *cobra.Command {
	var out string
	var raw bool
	c := &cobra.Command{
		Use:   "dumphid [device]",
		Short: "render the device's HID report descriptor as an annotated byte listing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runDump(args, out, true, raw)
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default stdout)")
	c.Flags().BoolVar(&raw, "raw", false, "also echo the raw descriptor bytes as a hex dump")
	return c
}

func runDump(args []string, out string, annotated, raw bool) error {
	path, err := resolveDevicePath(args)
	if err != nil {
		return err
	}

	dev, err := hid.Open(path)
	if err != nil {
		return err
	}
	defer dev.Close()

	desc, err := dev.ReportDescriptor()
	if err != nil {
		return err
	}

	if raw {
		if err := hexdump.Dump(os.Stdout, desc); err != nil {
			return err
		}
	}

	var text string
	if annotated {
		text = hid.Annotate(desc)
	} else {
		text = hid.Parse(desc).Dump()
	}

	return writeDump(out, text)
}

func writeDump(out, text string) error {
	target := dumpfile.Resolve(out)
	if target == "" {
		_, err := fmt.Print(text)
		return err
	}
	return os.WriteFile(target, []byte(text), 0o644)
}
