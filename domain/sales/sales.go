package sales

import (
	"errors"
	"time"
)

// Tier is the volume-based customer segment assigned to a store.
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// ErrInsufficientData is returned when the dataset cannot be split into
// three non-empty segments (fewer than 3 distinct stores, or totals too
// uniform for the cutpoints to separate).
var ErrInsufficientData = errors.New("insufficient data for segmentation")

// Record is one weekly sales observation for a store.
// Revenue, Profit and Segment are derived by Clean and are zero on raw records.
type Record struct {
	Store     string
	Week      time.Time // week-start date
	Price     float64
	BasePrice float64
	Units     int
	Featured  bool

	Revenue float64
	Profit  float64
	Segment Tier
}

// WeeklyAggregate holds summed metrics for one distinct week.
type WeeklyAggregate struct {
	Week    time.Time
	Revenue float64
	Units   int
	Profit  float64
}

// TierAggregate holds metrics for one customer segment.
type TierAggregate struct {
	Segment   Tier
	Revenue   float64
	Units     int
	AvgProfit float64
}

// PromotionAggregate holds mean metrics for one value of the featured flag.
type PromotionAggregate struct {
	Featured   bool
	AvgUnits   float64
	AvgRevenue float64
	AvgProfit  float64
}

// Totals holds overall metrics across all cleaned records.
type Totals struct {
	Revenue   float64
	Units     int
	AvgProfit float64
}
