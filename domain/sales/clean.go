package sales

import (
	"fmt"
	"math"
	"sort"

	lo "github.com/samber/lo"
)

// Clean deduplicates raw records, derives revenue and profit, and assigns a
// customer segment to every record. Segments are computed once from the full
// dataset and broadcast back onto records, so the assignment is stable for
// the whole run.
func Clean(records []Record) ([]Record, error) {
	out := lo.UniqBy(records, rawKey)

	for i := range out {
		out[i].Revenue = out[i].Price * float64(out[i].Units)
		out[i].Profit = out[i].Revenue - out[i].BasePrice*float64(out[i].Units)
	}

	segments, err := SegmentStores(out)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Segment = segments[out[i].Store]
	}
	return out, nil
}

// rawKey identifies a record by its raw fields only, so derived values never
// influence deduplication.
func rawKey(r Record) string {
	return fmt.Sprintf("%s|%s|%v|%v|%d|%t",
		r.Store, r.Week.Format("20060102"), r.Price, r.BasePrice, r.Units, r.Featured)
}

// SegmentStores sums units per store and splits stores into three
// equal-population tiers by total volume. The two boundaries are the 33rd
// and 66th percentiles over the store-level totals, not over raw records.
func SegmentStores(records []Record) (map[string]Tier, error) {
	totals := map[string]int{}
	for _, r := range records {
		totals[r.Store] += r.Units
	}
	if len(totals) < 3 {
		return nil, fmt.Errorf("%w: %d distinct stores, need at least 3", ErrInsufficientData, len(totals))
	}

	vals := make([]float64, 0, len(totals))
	for _, v := range totals {
		vals = append(vals, float64(v))
	}
	sort.Float64s(vals)
	cuts := Cutpoints(vals, 3)

	segments := make(map[string]Tier, len(totals))
	counts := map[Tier]int{}
	for store, total := range totals {
		t := tierFor(float64(total), cuts)
		segments[store] = t
		counts[t]++
	}
	for _, t := range []Tier{TierLow, TierMedium, TierHigh} {
		if counts[t] == 0 {
			return nil, fmt.Errorf("%w: segment %s is empty, store totals too uniform", ErrInsufficientData, t)
		}
	}
	return segments, nil
}

func tierFor(total float64, cuts []float64) Tier {
	switch {
	case total <= cuts[0]:
		return TierLow
	case total <= cuts[1]:
		return TierMedium
	default:
		return TierHigh
	}
}

// Cutpoints returns the k-1 percentile boundaries that split sorted values
// into k equal-population buckets, using linear interpolation between ranks.
func Cutpoints(sorted []float64, k int) []float64 {
	cuts := make([]float64, 0, k-1)
	n := len(sorted)
	for i := 1; i < k; i++ {
		pos := float64(i) / float64(k) * float64(n-1)
		lower := int(math.Floor(pos))
		upper := int(math.Ceil(pos))
		frac := pos - float64(lower)
		cuts = append(cuts, sorted[lower]*(1-frac)+sorted[upper]*frac)
	}
	return cuts
}
