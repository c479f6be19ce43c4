package pricing

import (
	"slices"
	"time"

	"reservation-engine/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

// Tier is the pricing in effect for a resource from Begins onward.
type Tier struct {
	Begins        time.Time
	PricingType   PricingType
	PriceUnit     PriceUnit
	LowestPrice   decimal.Decimal
	HighestPrice  decimal.Decimal
	TaxPercentage decimal.Decimal
}

func (t Tier) IsFree() bool {
	return t.PricingType == PricingTypeFree || !t.HighestPrice.IsPositive()
}

// ActiveTier returns the last tier whose start date is on or before date, or the first tier
// when none has started yet. Dates are compared as calendar days in loc.
func ActiveTier(tiers []Tier, date time.Time, loc *time.Location) (Tier, bool) {
	if len(tiers) == 0 {
		return Tier{}, false
	}
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b Tier) int {
		return a.Begins.Compare(b.Begins)
	})

	day := clock.DateOf(date, loc)
	active := sorted[0]
	for _, t := range sorted {
		if startDay(t.Begins, loc).After(day) {
			break
		}
		active = t
	}
	return active, true
}

// startDay reads Begins as a calendar date. DATE columns arrive as UTC midnight, so the
// instant must not be shifted into loc.
func startDay(begins time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(begins.Year(), begins.Month(), begins.Day(), 0, 0, 0, 0, loc)
}
