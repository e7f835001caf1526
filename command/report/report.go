package report

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sales-stats/connectors/chart"
	"sales-stats/connectors/config"
	ccsv "sales-stats/connectors/csv"
	"sales-stats/domain/sales"
)

// Run executes the report subcommand: read the aggregate CSVs and render the
// chart images plus the plain-text analysis report into the reports
// directory. The report text is built before anything is written, so a
// failed run leaves no partial artifacts behind.
func Run(args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Resolve()
	base := cfg.Dirs.Data

	weekly, err := ccsv.ReadWeekly(filepath.Join(base, "weekly_sales.csv"))
	if err != nil {
		return err
	}
	segments, err := ccsv.ReadSegments(filepath.Join(base, "segment_analysis.csv"))
	if err != nil {
		return err
	}
	promotions, err := ccsv.ReadPromotions(filepath.Join(base, "promo_analysis.csv"))
	if err != nil {
		return err
	}
	totals, err := ccsv.ReadSummary(filepath.Join(base, "summary.csv"))
	if err != nil {
		return err
	}

	ins, err := sales.BuildInsights(segments, promotions)
	if err != nil {
		slog.Error("phase.insights.error", "error", err)
		return err
	}
	text, err := sales.RenderReport(time.Now(), totals, segments, promotions, ins)
	if err != nil {
		return err
	}

	dir := cfg.Dirs.Reports
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := chart.WeeklyRevenueLine(weekly, filepath.Join(dir, "sales_trend.png")); err != nil {
		return fmt.Errorf("sales trend chart: %w", err)
	}
	if err := chart.SegmentRevenueBars(segments, filepath.Join(dir, "segment_analysis.png")); err != nil {
		return fmt.Errorf("segment chart: %w", err)
	}
	if err := chart.PromotionUnitsBars(promotions, filepath.Join(dir, "promo_effectiveness.png")); err != nil {
		return fmt.Errorf("promotion chart: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "analysis_report.txt"), []byte(text), 0o644); err != nil {
		return err
	}

	slog.Info("report.done", "dir", dir, "topSegment", string(ins.TopSegment), "promoImpact", ins.PromoImpact)
	fmt.Fprintf(os.Stderr, "report.done dir=%s\n", dir)
	return nil
}
