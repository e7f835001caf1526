package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"sales-stats/domain/sales"
)

// Package chart renders the analysis aggregates to PNG files.

// WeeklyRevenueLine draws revenue over time, one point per week.
func WeeklyRevenueLine(rows []sales.WeeklyAggregate, path string) error {
	p := plot.New()
	p.Title.Text = "Weekly Sales Trend"
	p.X.Label.Text = "Week"
	p.Y.Label.Text = "Revenue"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}

	xys := make(plotter.XYs, len(rows))
	for i, r := range rows {
		xys[i] = plotter.XY{X: float64(r.Week.Unix()), Y: r.Revenue}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Width = vg.Points(2)
	p.Add(line, plotter.NewGrid())

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// SegmentRevenueBars draws summed revenue per customer segment.
func SegmentRevenueBars(rows []sales.TierAggregate, path string) error {
	p := plot.New()
	p.Title.Text = "Revenue by Customer Segment"
	p.Y.Label.Text = "Revenue"

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.Revenue
		labels[i] = string(r.Segment)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// PromotionUnitsBars draws mean units sold per promotion status.
func PromotionUnitsBars(rows []sales.PromotionAggregate, path string) error {
	p := plot.New()
	p.Title.Text = "Average Units Sold by Promotion Status"
	p.Y.Label.Text = "Units"

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.AvgUnits
		labels[i] = "Not Featured"
		if r.Featured {
			labels[i] = "Featured"
		}
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
