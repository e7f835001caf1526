package sales

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	lo "github.com/samber/lo"
)

// Insights are the qualitative conclusions drawn from the aggregates.
type Insights struct {
	TopSegment  Tier   // segment with maximum summed revenue
	PromoImpact string // "Positive" or "Negative"
	PromoAction string // "Increase" or "Decrease"
}

// BuildInsights derives the key insights from the segment and promotion
// aggregates. Both featured and non-featured groups must be present: with
// one of them missing there is no basis for a promotion judgement.
func BuildInsights(segments []TierAggregate, promotions []PromotionAggregate) (Insights, error) {
	if len(segments) == 0 {
		return Insights{}, fmt.Errorf("no segment aggregates to report on")
	}
	top := lo.MaxBy(segments, func(a, b TierAggregate) bool { return a.Revenue > b.Revenue })
	promoted, ok := lo.Find(promotions, func(p PromotionAggregate) bool { return p.Featured })
	if !ok {
		return Insights{}, fmt.Errorf("promotion aggregate has no featured group")
	}
	regular, ok := lo.Find(promotions, func(p PromotionAggregate) bool { return !p.Featured })
	if !ok {
		return Insights{}, fmt.Errorf("promotion aggregate has no non-featured group")
	}

	ins := Insights{TopSegment: top.Segment, PromoImpact: "Negative", PromoAction: "Decrease"}
	if promoted.AvgProfit > regular.AvgProfit {
		ins.PromoImpact = "Positive"
		ins.PromoAction = "Increase"
	}
	return ins, nil
}

const reportTemplate = `
Sales Optimization Analysis Report
Generated on: {{.Date}}

1. Overall Performance Metrics:
   - Total Revenue: ${{money .Totals.Revenue}}
   - Total Units Sold: {{comma .Totals.Units}}
   - Average Profit per Sale: ${{printf "%.2f" .Totals.AvgProfit}}

2. Customer Segment Analysis:
{{.SegmentTable}}
3. Promotion Effectiveness:
{{.PromotionTable}}
4. Key Insights:
   - Most valuable customer segment: {{.Insights.TopSegment}}
   - Promotional effectiveness: {{.Insights.PromoImpact}} impact on profits

5. Recommendations:
   - Focus on {{.Insights.TopSegment}} segment for immediate revenue
   - {{.Insights.PromoAction}} promotional activities

Visualizations have been saved in the 'reports' directory.
`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"money": formatMoney,
	"comma": formatInt,
}).Parse(reportTemplate))

// RenderReport produces the plain-text analysis report.
func RenderReport(now time.Time, totals Totals, segments []TierAggregate, promotions []PromotionAggregate, ins Insights) (string, error) {
	data := struct {
		Date           string
		Totals         Totals
		SegmentTable   string
		PromotionTable string
		Insights       Insights
	}{
		Date:           now.Format("2006-01-02"),
		Totals:         totals,
		SegmentTable:   segmentTable(segments),
		PromotionTable: promotionTable(promotions),
		Insights:       ins,
	}
	var b strings.Builder
	if err := reportTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return b.String(), nil
}

func segmentTable(rows []TierAggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "   %-8s %14s %10s %12s\n", "segment", "revenue", "units", "avg_profit")
	for _, r := range rows {
		fmt.Fprintf(&b, "   %-8s %14.2f %10d %12.2f\n", r.Segment, r.Revenue, r.Units, r.AvgProfit)
	}
	return b.String()
}

func promotionTable(rows []PromotionAggregate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "   %-8s %12s %14s %12s\n", "featured", "avg_units", "avg_revenue", "avg_profit")
	for _, r := range rows {
		flag := "0"
		if r.Featured {
			flag = "1"
		}
		fmt.Fprintf(&b, "   %-8s %12.2f %14.2f %12.2f\n", flag, r.AvgUnits, r.AvgRevenue, r.AvgProfit)
	}
	return b.String()
}

// formatMoney renders a float with two decimals and thousands separators.
func formatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return groupThousands(s[:dot]) + s[dot:]
}

func formatInt(n int) string {
	return groupThousands(strconv.Itoa(n))
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
