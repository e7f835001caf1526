package sales

import (
	"strings"
	"testing"
	"time"
)

func TestBuildInsightsPositive(t *testing.T) {
	segments := []TierAggregate{
		{Segment: TierLow, Revenue: 100},
		{Segment: TierMedium, Revenue: 300},
		{Segment: TierHigh, Revenue: 900},
	}
	promotions := []PromotionAggregate{
		{Featured: false, AvgProfit: 3.00},
		{Featured: true, AvgProfit: 5.00},
	}
	ins, err := BuildInsights(segments, promotions)
	if err != nil {
		t.Fatal(err)
	}
	if ins.TopSegment != TierHigh {
		t.Errorf("top segment = %s, want High", ins.TopSegment)
	}
	if ins.PromoImpact != "Positive" || ins.PromoAction != "Increase" {
		t.Errorf("insights = %+v, want Positive/Increase", ins)
	}
}

func TestBuildInsightsNegative(t *testing.T) {
	segments := []TierAggregate{{Segment: TierLow, Revenue: 1}}
	promotions := []PromotionAggregate{
		{Featured: false, AvgProfit: 5.00},
		{Featured: true, AvgProfit: 3.00},
	}
	ins, err := BuildInsights(segments, promotions)
	if err != nil {
		t.Fatal(err)
	}
	if ins.PromoImpact != "Negative" || ins.PromoAction != "Decrease" {
		t.Errorf("insights = %+v, want Negative/Decrease", ins)
	}
}

func TestBuildInsightsMissingGroup(t *testing.T) {
	segments := []TierAggregate{{Segment: TierLow, Revenue: 1}}
	if _, err := BuildInsights(segments, []PromotionAggregate{{Featured: true}}); err == nil {
		t.Error("expected error with no non-featured group")
	}
	if _, err := BuildInsights(segments, []PromotionAggregate{{Featured: false}}); err == nil {
		t.Error("expected error with no featured group")
	}
	if _, err := BuildInsights(nil, nil); err == nil {
		t.Error("expected error with no segments")
	}
}

func TestRenderReport(t *testing.T) {
	totals := Totals{Revenue: 1234567.891, Units: 10500, AvgProfit: 3.456}
	segments := []TierAggregate{
		{Segment: TierLow, Revenue: 100.00, Units: 10, AvgProfit: 1.00},
		{Segment: TierHigh, Revenue: 900.00, Units: 90, AvgProfit: 9.00},
	}
	promotions := []PromotionAggregate{
		{Featured: false, AvgUnits: 3, AvgRevenue: 6, AvgProfit: 3.00},
		{Featured: true, AvgUnits: 15, AvgRevenue: 30, AvgProfit: 5.00},
	}
	ins, err := BuildInsights(segments, promotions)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	text, err := RenderReport(now, totals, segments, promotions, ins)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Sales Optimization Analysis Report",
		"Generated on: 2026-08-30",
		"Total Revenue: $1,234,567.89",
		"Total Units Sold: 10,500",
		"Average Profit per Sale: $3.46",
		"Most valuable customer segment: High",
		"Promotional effectiveness: Positive impact on profits",
		"Focus on High segment for immediate revenue",
		"Increase promotional activities",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		999.5:      "999.50",
		1000:       "1,000.00",
		1234567.89: "1,234,567.89",
		-1234.5:    "-1,234.50",
	}
	for in, want := range cases {
		if got := formatMoney(in); got != want {
			t.Errorf("formatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}
