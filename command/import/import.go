package cmdimport

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sales-stats/connectors/config"
	ccsv "sales-stats/connectors/csv"
	"sales-stats/connectors/source"
)

// Run executes the import subcommand: fetch the remote dataset and write the
// normalized snapshot to <data>/sales.csv.
func Run(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	url := fs.String("url", "", "dataset URL (overrides config source.url)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Resolve()
	if *url == "" {
		*url = cfg.Source.URL
	}
	slog.Info("import.start", "url", *url)

	ctx := context.Background()
	sc := source.New(nil, cfg.Source.Token)
	records, err := sc.FetchDataset(ctx, *url)
	if err != nil {
		slog.Error("phase.dataset.fetch.error", "url", *url, "error", err)
		return err
	}

	path := filepath.Join(cfg.Dirs.Data, "sales.csv")
	if err := ccsv.WriteSales(path, records); err != nil {
		return err
	}

	slog.Info("import.done", "records", len(records), "path", path)
	fmt.Fprintf(os.Stderr, "import.done records=%d\n", len(records))
	return nil
}
