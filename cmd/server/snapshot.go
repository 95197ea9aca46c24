package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/repositories/snapshots"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

var (
	convertFrom string
	convertTo   string
	statsStrict bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect and convert catalog snapshots",
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a snapshot between JSON and binary",
	Long: `Convert reads a snapshot and writes it in the other encoding. Encodings are ` +
		`detected from the file extensions unless --from or --to is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		from, err := resolveEncoding(args[0], convertFrom)
		if err != nil {
			return err
		}
		to, err := resolveEncoding(args[1], convertTo)
		if err != nil {
			return err
		}

		n, err := convertSnapshot(args[0], args[1], from, to)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%s, %d bytes)\n", args[1], to, n)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <path>",
	Short: "Load a snapshot and print catalog counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []catalog.Option
		if statsStrict {
			opts = append(opts, catalog.WithStrictIDs())
		}

		c, err := loadSnapshotFile(cmd.Context(), args[0], opts...)
		if err != nil {
			return err
		}

		counts := c.Counts()
		fmt.Printf("Items:       %d\n", counts.Items)
		fmt.Printf("Enchants:    %d\n", counts.Enchants)
		fmt.Printf("Gems:        %d\n", counts.Gems)
		fmt.Printf("Item icons:  %d\n", counts.ItemIcons)
		fmt.Printf("Spell icons: %d\n", counts.SpellIcons)

		if dups := c.Duplicates(); len(dups) > 0 {
			fmt.Printf("\nDuplicate ids (%d):\n", len(dups))
			for _, d := range dups {
				fmt.Printf("  - %s %d\n", d.Kind, d.ID)
			}
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Input encoding (json or binary)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Output encoding (json or binary)")
	statsCmd.Flags().BoolVar(&statsStrict, "strict", false, "Fail on duplicate ids")

	snapshotCmd.AddCommand(convertCmd)
	snapshotCmd.AddCommand(statsCmd)
}

func resolveEncoding(path, flag string) (snapshot.Encoding, error) {
	if flag != "" {
		return snapshot.ParseEncoding(flag)
	}
	enc, ok := snapshot.DetectEncoding(path, "")
	if !ok {
		return "", fmt.Errorf("cannot tell the encoding of %s; pass --from or --to", path)
	}
	return enc, nil
}

func convertSnapshot(in, out string, from, to snapshot.Encoding) (int, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", in, err)
	}

	s, err := snapshot.Decode(data, from)
	if err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", in, err)
	}

	encoded, err := snapshot.Encode(s, to)
	if err != nil {
		return 0, fmt.Errorf("failed to encode %s: %w", out, err)
	}

	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", out, err)
	}
	return len(encoded), nil
}

func loadSnapshotFile(ctx context.Context, path string, opts ...catalog.Option) (*catalog.Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	repo, err := snapshots.NewFile(&snapshots.FileConfig{Path: path})
	if err != nil {
		return nil, err
	}

	loader, err := catalog.NewLoader(&catalog.LoaderConfig{
		Source:  repo,
		Options: opts,
	})
	if err != nil {
		return nil, err
	}
	return loader.Initialize(ctx)
}
