package cmd

import (
	"fmt"
	"os"

	"stock-audit/core/capture"
	"stock-audit/core/clipboard"
	"stock-audit/core/config"
	"stock-audit/core/logger"
	"stock-audit/core/manifest"
	"stock-audit/core/storage"
	"stock-audit/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd represents the interactive audit session
var auditCmd = &cobra.Command{
	Use:   "audit [manifest]",
	Short: "Run an interactive audit session",
	Long: `Starts an audit session in the terminal. Identifiers are read from standard
input, one per line; a keyboard-wedge barcode scanner works the same way.
With a decoder command configured (SCAN_DECODER_COMMAND) the camera can be
armed for one barcode at a time with :scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		serial, _ := cmd.Flags().GetString("serial-column")
		part, _ := cmd.Flags().GetString("part-column")
		decoder, _ := cmd.Flags().GetString("decoder")
		device, _ := cmd.Flags().GetString("device")
		input, _ := cmd.Flags().GetString("scanner-input")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if decoder != "" {
			cfg.Scan.DecoderCommand = decoder
		}
		if device != "" {
			cfg.Scan.Device = device
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		var bucket *storage.Bucket
		if store, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Storage unavailable", zap.Error(err))
		} else {
			bucket = storage.NewBucket(store, cfg.Storage.Bucket)
		}

		svc := audit.NewService(bucket, audit.Options{Manifest: cfg.Manifest, Export: cfg.Export}, nil, logg)
		if _, err := svc.SelectMode(mode); err != nil {
			return err
		}

		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open manifest: %w", err)
			}
			_, err = svc.LoadManifest(args[0], f, manifest.Columns{Serial: serial, Part: part})
			f.Close()
			if err != nil {
				return err
			}
		}

		scanner, closeInput, err := newScanner(cfg.Scan, input, logg)
		if err != nil {
			return err
		}
		defer closeInput()

		if !clipboard.Available() {
			logg.Debug("System clipboard unavailable, copy commands print to the console")
		}

		c := &console{
			svc:     svc,
			scanner: scanner,
			copier:  clipboard.New().WithFallback(cmd.OutOrStdout()),
			out:     cmd.OutOrStdout(),
			logger:  logg,
		}
		if len(args) == 1 {
			info, _ := svc.Manifest()
			c.printManifest(info)
		}

		return c.run(cmd.Context(), cmd.InOrStdin())
	},
}

// newScanner builds the barcode scanner, or nil when no decoder is configured.
// A scanner input file (a serial barcode reader or a FIFO fed by a decoder)
// takes precedence over the decoder command.
func newScanner(cfg capture.Config, input string, logg *zap.Logger) (*capture.Scanner, func(), error) {
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open scanner input: %w", err)
		}
		scanner := capture.NewScanner(capture.NewLineDecoder(f), input, cfg.ArmTimeout, logg)
		return scanner, func() { f.Close() }, nil
	}
	if cfg.DecoderCommand == "" {
		return nil, func() {}, nil
	}

	device := cfg.Device
	if device == "" {
		devices, err := capture.ListDevices()
		if err != nil {
			logg.Debug("Camera enumeration failed", zap.Error(err))
		}
		device = capture.PreferredDevice(devices, "")
	}

	return capture.NewScanner(capture.NewCommandDecoder(cfg.DecoderCommand), device, cfg.ArmTimeout, logg), func() {}, nil
}

func init() {
	auditCmd.Flags().String("mode", "audit", "Session mode (audit, quick)")
	auditCmd.Flags().String("serial-column", "", "Manifest column holding serial numbers (guessed when empty)")
	auditCmd.Flags().String("part-column", "", "Manifest column holding part names (guessed when empty)")
	auditCmd.Flags().String("decoder", "", "Barcode decoder command, overrides SCAN_DECODER_COMMAND")
	auditCmd.Flags().String("device", "", "Camera device, overrides SCAN_DEVICE")
	auditCmd.Flags().String("scanner-input", "", "File emitting one barcode per line (serial scanner, FIFO)")
	RootCmd.AddCommand(auditCmd)
}
