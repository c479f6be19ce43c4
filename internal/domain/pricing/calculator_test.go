//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"reservation-engine/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loc = time.FixedZone("EET", 2*60*60)

func paidTier(begins time.Time, unit pricing.PriceUnit, price string) pricing.Tier {
	return pricing.Tier{
		Begins:        begins,
		PricingType:   pricing.PricingTypePaid,
		PriceUnit:     unit,
		LowestPrice:   decimal.RequireFromString(price),
		HighestPrice:  decimal.RequireFromString(price),
		TaxPercentage: decimal.Zero,
	}
}

func TestVolume(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		unit     pricing.PriceUnit
		want     string
	}{
		{"exact hours", 120, pricing.PriceUnitPerHour, "2"},
		{"ninety minutes per hour", 90, pricing.PriceUnitPerHour, "1.5"},
		{"seventy minutes rounds up", 70, pricing.PriceUnitPerHour, "1.25"},
		{"one minute over rounds up", 61, pricing.PriceUnitPerHour, "1.25"},
		{"forty minutes per half hour", 40, pricing.PriceUnitPer30Mins, "1.5"},
		{"partial quarter", 20, pricing.PriceUnitPer15Mins, "2"},
		{"fixed short", 5, pricing.PriceUnitFixed, "1"},
		{"fixed long", 500, pricing.PriceUnitFixed, "1"},
		{"per day", 3000, pricing.PriceUnitPerDay, "1"},
		{"per week", 20, pricing.PriceUnitPerWeek, "1"},
		{"zero duration", 0, pricing.PriceUnitPerHour, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Volume(tt.duration, tt.unit)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestActiveTier(t *testing.T) {
	t2021 := paidTier(time.Date(2021, 1, 1, 0, 0, 0, 0, loc), pricing.PriceUnitPerHour, "10")
	t2021.PricingType = pricing.PricingTypeFree
	t2022 := paidTier(time.Date(2022, 1, 1, 0, 0, 0, 0, loc), pricing.PriceUnitPerHour, "12")
	tiers := []pricing.Tier{t2022, t2021}

	tests := []struct {
		name string
		date time.Time
		want pricing.Tier
	}{
		{"mid 2021", time.Date(2021, 6, 1, 12, 0, 0, 0, loc), t2021},
		{"mid 2022", time.Date(2022, 6, 1, 12, 0, 0, 0, loc), t2022},
		{"first day of 2022", time.Date(2022, 1, 1, 8, 0, 0, 0, loc), t2022},
		{"before any tier", time.Date(2020, 6, 1, 12, 0, 0, 0, loc), t2021},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pricing.ActiveTier(tiers, tt.date, loc)
			require.True(t, ok)
			assert.Equal(t, tt.want.Begins, got.Begins)
			assert.Equal(t, tt.want.PricingType, got.PricingType)
		})
	}

	_, ok := pricing.ActiveTier(nil, time.Now(), loc)
	assert.False(t, ok)
}

func TestActiveTierStoredDates(t *testing.T) {
	// DATE columns are read back as UTC midnight.
	free := paidTier(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), pricing.PriceUnitPerHour, "0")
	free.PricingType = pricing.PricingTypeFree
	paid := paidTier(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), pricing.PriceUnitPerHour, "12")
	tiers := []pricing.Tier{free, paid}

	west := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		zone *time.Location
		date time.Time
		want pricing.PricingType
	}{
		{"west: last day before the paid tier", west, time.Date(2021, 12, 31, 12, 0, 0, 0, west), pricing.PricingTypeFree},
		{"west: late evening before the paid tier", west, time.Date(2021, 12, 31, 23, 30, 0, 0, west), pricing.PricingTypeFree},
		{"west: first day of the paid tier", west, time.Date(2022, 1, 1, 0, 30, 0, 0, west), pricing.PricingTypePaid},
		{"east: first hour of the paid tier", loc, time.Date(2022, 1, 1, 1, 0, 0, 0, loc), pricing.PricingTypePaid},
		{"east: last day before the paid tier", loc, time.Date(2021, 12, 31, 23, 0, 0, 0, loc), pricing.PricingTypeFree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pricing.ActiveTier(tiers, tt.date, tt.zone)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.PricingType)
		})
	}
}

func TestCalculatorComputePrice(t *testing.T) {
	calc := pricing.NewCalculator(loc, "Free", "€")
	date := time.Date(2024, 2, 1, 10, 0, 0, 0, loc)
	begins := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)

	t.Run("paid with tax", func(t *testing.T) {
		tier := paidTier(begins, pricing.PriceUnitPerHour, "20")
		tier.TaxPercentage = decimal.RequireFromString("24")

		q := calc.ComputePrice(90, []pricing.Tier{tier}, date)

		assert.True(t, decimal.RequireFromString("30").Equal(q.GrossPrice))
		assert.True(t, decimal.RequireFromString("24.19").Equal(q.NetPrice), "net %s", q.NetPrice)
		assert.False(t, q.Free)
		assert.Equal(t, "30.00 €", q.Price)
		assert.Equal(t, "1.5 x per hour (VAT 24%): 20.00 € = 30.00 €", q.Breakdown)
	})

	t.Run("without tax net equals gross", func(t *testing.T) {
		q := calc.ComputePrice(30, []pricing.Tier{paidTier(begins, pricing.PriceUnitPer15Mins, "5")}, date)

		assert.True(t, q.NetPrice.Equal(q.GrossPrice))
		assert.Equal(t, "10.00 €", q.Price)
	})

	t.Run("price range", func(t *testing.T) {
		tier := paidTier(begins, pricing.PriceUnitFixed, "40")
		tier.LowestPrice = decimal.RequireFromString("25")

		q := calc.ComputePrice(500, []pricing.Tier{tier}, date)

		assert.True(t, q.HasRange())
		assert.Equal(t, "25.00 € - 40.00 €", q.Price)
	})

	t.Run("zero price renders free label", func(t *testing.T) {
		q := calc.ComputePrice(60, []pricing.Tier{paidTier(begins, pricing.PriceUnitPerHour, "0")}, date)

		assert.True(t, q.Free)
		assert.Equal(t, "Free", q.Price)
	})

	t.Run("free pricing type", func(t *testing.T) {
		tier := paidTier(begins, pricing.PriceUnitPerHour, "15")
		tier.PricingType = pricing.PricingTypeFree

		q := calc.ComputePrice(60, []pricing.Tier{tier}, date)

		assert.True(t, q.Free)
		assert.Equal(t, "Free", q.Breakdown)
	})

	t.Run("no tiers", func(t *testing.T) {
		q := calc.ComputePrice(60, nil, date)

		assert.True(t, q.Unavailable)
		assert.Equal(t, "Free", q.Price)
		assert.True(t, decimal.NewFromInt(1).Equal(q.Volume))
	})

	t.Run("non positive duration", func(t *testing.T) {
		q := calc.ComputePrice(0, []pricing.Tier{paidTier(begins, pricing.PriceUnitPerHour, "10")}, date)

		assert.True(t, q.Unavailable)
		assert.True(t, decimal.NewFromInt(1).Equal(q.Volume))
	})
}
