package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wuwaconv/internal"
	"wuwaconv/internal/config"
	"wuwaconv/internal/resource"
)

// Runner walks the data directory and converts every workbook and tracker
// export it finds, one file at a time. One file's failure never stops the
// next.
type Runner struct {
	cfg  config.Config
	opts Options
}

func NewRunner(cfg config.Config) *Runner {
	return &Runner{cfg: cfg, opts: DefaultOptions()}
}

func (r *Runner) Run(ctx context.Context) error {
	if _, err := os.Stat(r.cfg.DataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(r.cfg.DataDir, 0o755); err != nil {
			return err
		}
		if err := os.MkdirAll(r.cfg.ExportDir, 0o755); err != nil {
			return err
		}
		fmt.Printf("created data directory: %s\n", r.cfg.DataDir)
		fmt.Printf("put .xlsx or .json files into it and run again\n")
		return nil
	}

	entries, err := os.ReadDir(r.cfg.DataDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".xlsx" && ext != ".json" {
			continue
		}
		fmt.Printf("processing %s\n", name)
		if err := r.ConvertFile(ctx, filepath.Join(r.cfg.DataDir, name), r.cfg.ExportDir); err != nil {
			fmt.Printf("conversion aborted (%s): %v\n", name, err)
		}
	}
	return nil
}

// ConvertFile dispatches a single file by extension and saves the result.
func (r *Runner) ConvertFile(ctx context.Context, path, outputDir string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		conv := NewWorkbookConverter(path, r.opts)
		if err := conv.Process(); err != nil {
			return err
		}
		saveAndReport(conv.Envelope(), outputDir)
		return nil
	case ".json":
		mapper := resource.NewMapper()
		mapper.Load(ctx, resource.NewClient(r.cfg))
		conv := NewTrackerConverter(path, r.opts, mapper)
		if err := conv.Process(); err != nil {
			return err
		}
		saveAndReport(conv.Envelope(), outputDir)
		return nil
	default:
		return fmt.Errorf("unsupported file type: %s", path)
	}
}

// saveAndReport logs a write failure instead of propagating it; a bad
// export directory should not abort the remaining files.
func saveAndReport(env internal.ExportEnvelope, outputDir string) {
	path, err := Save(env, outputDir)
	if err != nil {
		fmt.Printf("save failed: %v\n", err)
		return
	}
	fmt.Printf("exported %d records to %s\n", len(env.List), path)
}
