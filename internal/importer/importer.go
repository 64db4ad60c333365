package importer

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
)

// Result captures the outcome of one file's import.
type Result struct {
	File     string
	Status   string
	ErrorMsg string
}

// Summary aggregates the whole import batch.
type Summary struct {
	Results []Result
	OK      int
	Failed  int
}

// ListSegments returns the segment files in dir in lexical order, the order
// Import will process them in.
func ListSegments(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to list segments in %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// Import runs each file through the runner in order. A single file failing
// does not stop the batch; failures are logged and aggregated into the
// summary. onProgress, when non-nil, is invoked once per file.
func Import(ctx context.Context, files []string, r Runner, onProgress func()) *Summary {
	sum := &Summary{}
	for _, file := range files {
		res := Result{File: filepath.Base(file), Status: "OK"}
		if err := r.Run(ctx, file); err != nil {
			res.Status = "FAILED"
			res.ErrorMsg = err.Error()
			sum.Failed++
			log.Printf("Warning: failed to import %s: %v (continuing...)", res.File, err)
		} else {
			sum.OK++
		}
		sum.Results = append(sum.Results, res)
		if onProgress != nil {
			onProgress()
		}
	}
	return sum
}
