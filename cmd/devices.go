package cmd

import (
	"fmt"
	"text/tabwriter"

	"stock-audit/core/capture"
	"stock-audit/core/config"

	"github.com/spf13/cobra"
)

// devicesCmd represents the devices command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List cameras and the one a scan would use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		devices, err := capture.ListDevices()
		if err != nil {
			return fmt.Errorf("failed to list cameras: %w", err)
		}

		preferred := capture.PreferredDevice(devices, cfg.Scan.Device)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DEVICE\tLABEL\tSELECTED")
		for _, d := range devices {
			mark := ""
			if d.Path == preferred {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Path, d.Label, mark)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if len(devices) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No cameras found.")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(devicesCmd)
}
