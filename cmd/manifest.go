package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"stock-audit/core/config"
	"stock-audit/core/manifest"
	"stock-audit/core/storage"

	"github.com/spf13/cobra"
)

// manifestCmd groups manifest commands
var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect and store manifests",
}

// manifestInspectCmd represents the manifest inspect command
var manifestInspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show headers, guessed columns and expected count of a manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serial, _ := cmd.Flags().GetString("serial-column")
		part, _ := cmd.Flags().GetString("part-column")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open manifest: %w", err)
		}
		defer f.Close()

		table, err := manifest.ParseFile(args[0], f)
		if err != nil {
			return err
		}

		cols := manifest.ResolveColumns(table, cfg.Manifest, manifest.Columns{Serial: serial, Part: part})

		expected, err := manifest.LoadExpected(table, cols)
		if err != nil {
			return err
		}

		return printInspection(cmd, table, cols, expected)
	},
}

func printInspection(cmd *cobra.Command, table *manifest.Table, cols manifest.Columns, expected manifest.Expected) error {
	part := cols.Part
	if part == "" {
		part = "(None)"
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if table.Sheet != "" {
		fmt.Fprintf(w, "Sheet:\t%s\n", table.Sheet)
	}
	fmt.Fprintf(w, "Columns:\t%s\n", strings.Join(table.ColumnNames(), ", "))
	fmt.Fprintf(w, "Serial column:\t%s\n", cols.Serial)
	fmt.Fprintf(w, "Part column:\t%s\n", part)
	fmt.Fprintf(w, "Rows:\t%d\n", len(table.Rows))
	fmt.Fprintf(w, "Expected:\t%d\n", len(expected))
	return w.Flush()
}

// manifestPushCmd represents the manifest push command
var manifestPushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Upload a manifest to the bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, bucket, err := openBucket()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read manifest: %w", err)
		}

		// Refuse files the audit could not load later.
		source, err := manifest.SourceFor(args[0])
		if err != nil {
			return err
		}
		if _, err := source.Parse(bytes.NewReader(data)); err != nil {
			return err
		}

		key := path.Join(cfg.Manifest.Prefix, filepath.Base(args[0]))
		if _, err := bucket.Put(cmd.Context(), key, data, contentTypeFor(args[0])); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s\n", key)
		return nil
	},
}

// manifestListCmd represents the manifest list command
var manifestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List manifests stored in the bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, bucket, err := openBucket()
		if err != nil {
			return err
		}

		objects, err := bucket.List(cmd.Context(), cfg.Manifest.Prefix)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tSIZE\tMODIFIED")
		for _, o := range objects {
			fmt.Fprintf(w, "%s\t%d\t%s\n", o.Key, o.Size, o.LastModified.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func openBucket() (*config.Config, *storage.Bucket, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return cfg, storage.NewBucket(client, cfg.Storage.Bucket), nil
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return "text/csv"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}

func init() {
	manifestInspectCmd.Flags().String("serial-column", "", "Serial column (guessed when empty)")
	manifestInspectCmd.Flags().String("part-column", "", "Part column (guessed when empty)")
	manifestCmd.AddCommand(manifestInspectCmd, manifestPushCmd, manifestListCmd)
	RootCmd.AddCommand(manifestCmd)
}

