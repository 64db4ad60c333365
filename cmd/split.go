package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"db-split/internal/pattern"
	"db-split/internal/splitter"

	"github.com/spf13/cobra"
)

var (
	inFile         string
	outDir         string
	excludePats    []string
	createOnlyPats []string
	dryRun         bool
	withImport     bool
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a dump file into one .sql file per table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetSplitConfig()
		if err != nil {
			return err
		}

		// Pattern list strategy: CLI flag > config > default. Slice flags
		// are not bound to viper; precedence is handled explicitly here.
		policy := pattern.Policy{Exclude: cfg.Exclude, CreateOnly: cfg.CreateOnly}
		if len(excludePats) > 0 {
			policy.Exclude = excludePats
		}
		if len(createOnlyPats) > 0 {
			policy.CreateOnly = createOnlyPats
		}
		if outDir == "" {
			outDir = cfg.Out
		}

		if inFile == "" {
			return fmt.Errorf("--file is required (use \"-\" for stdin)")
		}
		var in io.Reader
		if inFile == "-" {
			in = os.Stdin
		} else {
			f, err := os.Open(inFile)
			if err != nil {
				return fmt.Errorf("failed to open dump: %w", err)
			}
			defer f.Close()
			in = f
		}

		var sink splitter.SegmentSink
		if dryRun {
			log.Println("[SIMULATION] Dry-Run Mode Active: No files will be written.")
			sink = splitter.DiscardSink{}
		} else {
			w, err := splitter.NewSegmentWriter(outDir)
			if err != nil {
				return err
			}
			defer w.Close()
			sink = w
		}

		log.Printf("Splitting %s (exclude=%v, create-only=%v)...", inFile, policy.Exclude, policy.CreateOnly)
		start := time.Now()

		res, err := splitter.Scan(in, policy, sink, nil)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Println("\n📊 Split Summary:")
		for i, t := range res.Tables {
			icon := "✓"
			switch t.Disposition {
			case pattern.Skip:
				icon = "-"
			case pattern.CreateOnly:
				icon = "~"
			}
			fmt.Printf("[%s] [%02d/%02d] %-20s : %s\n", icon, i+1, len(res.Tables), t.Name, t.Disposition)
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Segments Produced: %d\n", res.Produced)
		for _, w := range res.Warnings {
			fmt.Printf("    └ Warning: %s\n", w)
		}
		log.Printf("Split Done! Time Elapsed: %s", elapsed)

		if withImport && !dryRun {
			// Segment files are all closed at this point; the import
			// phase takes its directory listing only now.
			return runImportPhase(cmd.Context(), outDir)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&inFile, "file", "f", "", "Dump file to split (\"-\" reads stdin)")
	splitCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for per-table files (default ./tables)")
	splitCmd.Flags().StringSliceVarP(&excludePats, "exclude", "x", []string{}, "Glob patterns of tables to skip entirely (default \"_*\")")
	splitCmd.Flags().StringSliceVarP(&createOnlyPats, "create-only", "c", []string{}, "Glob patterns of tables to keep structure-only")
	splitCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve dispositions without writing any file")
	splitCmd.Flags().BoolVar(&withImport, "import", false, "Import the produced files after a successful split")
}
