package calculate

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sales-stats/connectors/config"
	ccsv "sales-stats/connectors/csv"
	"sales-stats/domain/sales"
)

// Run executes the calculate subcommand: read the dataset snapshot, clean it
// (dedupe, derived metrics, segmentation) and write the aggregate CSVs.
func Run(args []string) error {
	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: no arguments expected")
	}

	cfg := config.Resolve()
	base := cfg.Dirs.Data

	raw, err := ccsv.ReadSales(filepath.Join(base, "sales.csv"))
	if err != nil {
		return err
	}
	slog.Info("calculate.start", "records", len(raw))

	cleaned, err := sales.Clean(raw)
	if err != nil {
		slog.Error("phase.clean.error", "error", err)
		return err
	}
	slog.Info("phase.clean.done", "records", len(cleaned), "removed", len(raw)-len(cleaned))

	weekly := sales.ByWeek(cleaned)
	segments := sales.ByTier(cleaned)
	promotions := sales.ByPromotion(cleaned)
	totals := sales.Overall(cleaned)

	if err := ccsv.WriteWeekly(filepath.Join(base, "weekly_sales.csv"), weekly); err != nil {
		return err
	}
	if err := ccsv.WriteSegments(filepath.Join(base, "segment_analysis.csv"), segments); err != nil {
		return err
	}
	if err := ccsv.WritePromotions(filepath.Join(base, "promo_analysis.csv"), promotions); err != nil {
		return err
	}
	if err := ccsv.WriteSummary(filepath.Join(base, "summary.csv"), totals); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "calculate.done weeks=%d segments=%d\n", len(weekly), len(segments))
	return nil
}
