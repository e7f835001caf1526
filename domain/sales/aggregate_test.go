package sales

import (
	"math"
	"testing"
)

func cleanedFixture(t *testing.T) []Record {
	t.Helper()
	cleaned, err := Clean(threeStores(t))
	if err != nil {
		t.Fatal(err)
	}
	return cleaned
}

func TestByWeek(t *testing.T) {
	rows := ByWeek(cleanedFixture(t))
	if len(rows) != 2 {
		t.Fatalf("expected 2 weekly rows, got %d", len(rows))
	}
	if !rows[0].Week.Before(rows[1].Week) {
		t.Errorf("weekly rows not ordered ascending: %v then %v", rows[0].Week, rows[1].Week)
	}

	// Week 20240101: s1 2.5*10 + s2 3.0*30 + s3 1.5*40 = 25 + 90 + 60
	if math.Abs(rows[0].Revenue-175) > 1e-9 {
		t.Errorf("week 1 revenue = %v, want 175", rows[0].Revenue)
	}
	if rows[0].Units != 80 {
		t.Errorf("week 1 units = %d, want 80", rows[0].Units)
	}
	// Week 20240108: s2 3.0*20 + s3 1.5*50 = 60 + 75
	if math.Abs(rows[1].Revenue-135) > 1e-9 {
		t.Errorf("week 2 revenue = %v, want 135", rows[1].Revenue)
	}
}

func TestByTierOrderAndRounding(t *testing.T) {
	records := []Record{
		{Segment: TierHigh, Revenue: 10, Units: 3, Profit: 1},
		{Segment: TierLow, Revenue: 5, Units: 1, Profit: 1},
		{Segment: TierMedium, Revenue: 7, Units: 2, Profit: 1},
		{Segment: TierHigh, Revenue: 10, Units: 3, Profit: 2},
		{Segment: TierHigh, Revenue: 10, Units: 3, Profit: 2},
	}
	rows := ByTier(records)
	if len(rows) != 3 {
		t.Fatalf("expected 3 tier rows, got %d", len(rows))
	}
	wantOrder := []Tier{TierLow, TierMedium, TierHigh}
	for i, tier := range wantOrder {
		if rows[i].Segment != tier {
			t.Errorf("row %d segment = %s, want %s", i, rows[i].Segment, tier)
		}
	}
	// High: mean profit of {1, 2, 2} rounds to 1.67
	if rows[2].AvgProfit != 1.67 {
		t.Errorf("High avg profit = %v, want 1.67", rows[2].AvgProfit)
	}
	if rows[2].Revenue != 30 || rows[2].Units != 9 {
		t.Errorf("High sums = (%v, %d), want (30, 9)", rows[2].Revenue, rows[2].Units)
	}
}

func TestByPromotion(t *testing.T) {
	records := []Record{
		{Featured: true, Units: 10, Revenue: 20, Profit: 5},
		{Featured: true, Units: 20, Revenue: 40, Profit: 5},
		{Featured: false, Units: 3, Revenue: 6, Profit: 3},
	}
	rows := ByPromotion(records)
	if len(rows) != 2 {
		t.Fatalf("expected 2 promotion rows, got %d", len(rows))
	}
	if rows[0].Featured || !rows[1].Featured {
		t.Fatalf("non-featured row must come first: %+v", rows)
	}
	if rows[1].AvgUnits != 15 || rows[1].AvgRevenue != 30 || rows[1].AvgProfit != 5 {
		t.Errorf("featured means = %+v, want units 15, revenue 30, profit 5", rows[1])
	}
	if rows[0].AvgUnits != 3 {
		t.Errorf("non-featured avg units = %v, want 3", rows[0].AvgUnits)
	}
}

func TestOverall(t *testing.T) {
	totals := Overall([]Record{
		{Revenue: 10, Units: 2, Profit: 4},
		{Revenue: 20, Units: 3, Profit: 2},
	})
	if totals.Revenue != 30 || totals.Units != 5 || totals.AvgProfit != 3 {
		t.Errorf("totals = %+v, want revenue 30, units 5, avg profit 3", totals)
	}
}

func TestOverallEmpty(t *testing.T) {
	if totals := Overall(nil); totals != (Totals{}) {
		t.Errorf("totals of empty input = %+v, want zero", totals)
	}
}
