package sales

import (
	"math"
	"sort"
	"time"

	lo "github.com/samber/lo"
)

// ByWeek groups cleaned records by week and sums revenue, units and profit.
// Rows are ordered by week ascending. Values are not rounded.
func ByWeek(records []Record) []WeeklyAggregate {
	groups := lo.GroupBy(records, func(r Record) time.Time { return r.Week })
	out := lo.MapToSlice(groups, func(week time.Time, rs []Record) WeeklyAggregate {
		return WeeklyAggregate{
			Week:    week,
			Revenue: lo.SumBy(rs, func(r Record) float64 { return r.Revenue }),
			Units:   lo.SumBy(rs, func(r Record) int { return r.Units }),
			Profit:  lo.SumBy(rs, func(r Record) float64 { return r.Profit }),
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Week.Before(out[j].Week) })
	return out
}

// ByTier groups cleaned records by customer segment and emits summed revenue,
// summed units and mean profit per segment, rounded to 2 decimals. Rows are
// ordered Low, Medium, High.
func ByTier(records []Record) []TierAggregate {
	groups := lo.GroupBy(records, func(r Record) Tier { return r.Segment })
	out := lo.MapToSlice(groups, func(t Tier, rs []Record) TierAggregate {
		return TierAggregate{
			Segment:   t,
			Revenue:   round2(lo.SumBy(rs, func(r Record) float64 { return r.Revenue })),
			Units:     lo.SumBy(rs, func(r Record) int { return r.Units }),
			AvgProfit: round2(lo.MeanBy(rs, func(r Record) float64 { return r.Profit })),
		}
	})
	sort.Slice(out, func(i, j int) bool { return tierRank(out[i].Segment) < tierRank(out[j].Segment) })
	return out
}

// ByPromotion groups cleaned records by the featured flag and emits mean
// units, revenue and profit per group, rounded to 2 decimals. The
// non-featured row comes first.
func ByPromotion(records []Record) []PromotionAggregate {
	groups := lo.GroupBy(records, func(r Record) bool { return r.Featured })
	out := lo.MapToSlice(groups, func(featured bool, rs []Record) PromotionAggregate {
		return PromotionAggregate{
			Featured:   featured,
			AvgUnits:   round2(lo.MeanBy(rs, func(r Record) float64 { return float64(r.Units) })),
			AvgRevenue: round2(lo.MeanBy(rs, func(r Record) float64 { return r.Revenue })),
			AvgProfit:  round2(lo.MeanBy(rs, func(r Record) float64 { return r.Profit })),
		}
	})
	sort.Slice(out, func(i, j int) bool { return !out[i].Featured && out[j].Featured })
	return out
}

// Overall computes dataset-wide totals: summed revenue and units, mean profit.
func Overall(records []Record) Totals {
	if len(records) == 0 {
		return Totals{}
	}
	return Totals{
		Revenue:   lo.SumBy(records, func(r Record) float64 { return r.Revenue }),
		Units:     lo.SumBy(records, func(r Record) int { return r.Units }),
		AvgProfit: round2(lo.MeanBy(records, func(r Record) float64 { return r.Profit })),
	}
}

func tierRank(t Tier) int {
	switch t {
	case TierLow:
		return 0
	case TierMedium:
		return 1
	default:
		return 2
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
