package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"db-split/internal/importer"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var (
	importDir  string
	clientKind string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a directory of per-table .sql files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImportPhase(cmd.Context(), importDir)
	},
}

func init() {
	RootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importDir, "dir", "d", "./tables", "Directory of .sql files to import")
	importCmd.Flags().StringVar(&clientKind, "client", "", "Import client: \"driver\" (MySQL driver) or \"mysql\" (external binary)")
}

// runImportPhase imports every segment in dir, one file per attempt, in
// lexical order, continuing past single-file failures. Shared by the
// standalone import command and split --import.
func runImportPhase(ctx context.Context, dir string) error {
	cfg, err := GetImportConfig()
	if err != nil {
		return err
	}
	if clientKind != "" {
		cfg.Client = clientKind
	}

	runner, err := importer.GetRunner(cfg.Client, cfg.DSN, cfg.ClientArgs)
	if err != nil {
		return err
	}
	if c, ok := runner.(io.Closer); ok {
		defer c.Close()
	}

	files, err := importer.ListSegments(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Printf("No segments found in %s, nothing to import", dir)
		return nil
	}

	fmt.Printf("Importing %d file(s) via %s client\n", len(files), cfg.Client)
	start := time.Now()

	uiprogress.Start()
	bar := uiprogress.AddBar(len(files)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return "Importing: "
	})

	sum := importer.Import(ctx, files, runner, func() {
		bar.Incr()
	})

	uiprogress.Stop()

	fmt.Println("\n📊 Import Summary:")
	for i, r := range sum.Results {
		icon := "✓"
		if r.Status != "OK" {
			icon = "!"
		}
		fmt.Printf("[%s] [%02d/%02d] %-20s : %s\n", icon, i+1, len(sum.Results), r.File, r.Status)
		if r.ErrorMsg != "" {
			fmt.Printf("    └ Error: %s\n", r.ErrorMsg)
		}
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Imported: %d  Failed: %d\n", sum.OK, sum.Failed)
	log.Printf("Import Done! Time Elapsed: %s", time.Since(start))

	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d imports failed", sum.Failed, len(files))
	}
	return nil
}
