package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const slotMinutes = 15

var hundred = decimal.NewFromInt(100)

// Quote is the result of pricing one reservation.
type Quote struct {
	Volume           decimal.Decimal
	PriceUnit        PriceUnit
	UnitPrice        decimal.Decimal
	GrossPrice       decimal.Decimal
	LowestGrossPrice decimal.Decimal
	NetPrice         decimal.Decimal
	TaxPercentage    decimal.Decimal
	Free             bool
	// Unavailable is set when no tier exists or the duration is not positive.
	Unavailable bool
	Price       string
	Breakdown   string
}

func (q Quote) HasRange() bool {
	return !q.Free && !q.LowestGrossPrice.Equal(q.GrossPrice)
}

type Calculator struct {
	loc       *time.Location
	freeLabel string
	currency  string
}

func NewCalculator(loc *time.Location, freeLabel, currency string) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc, freeLabel: freeLabel, currency: currency}
}

// Volume returns the number of billable units for a duration. Partial units are rounded up
// to the next 15 minute slot, so 70 minutes per hour bill as 1.25.
func Volume(durationMinutes int, unit PriceUnit) decimal.Decimal {
	if !unit.Subdividable() || durationMinutes <= 0 {
		return decimal.NewFromInt(1)
	}
	unitMinutes := unit.Minutes()

	whole := durationMinutes / unitMinutes
	remainder := durationMinutes % unitMinutes
	if remainder == 0 {
		return decimal.NewFromInt(int64(whole))
	}

	slots := (remainder + slotMinutes - 1) / slotMinutes
	fraction := decimal.NewFromInt(int64(slots * slotMinutes)).Div(decimal.NewFromInt(int64(unitMinutes)))
	return decimal.NewFromInt(int64(whole)).Add(fraction)
}

// NetOf strips tax from a gross amount.
func NetOf(gross, taxPercentage decimal.Decimal) decimal.Decimal {
	if !taxPercentage.IsPositive() {
		return gross
	}
	return gross.Div(decimal.NewFromInt(1).Add(taxPercentage.Div(hundred))).Round(2)
}

func (c *Calculator) ComputePrice(durationMinutes int, tiers []Tier, date time.Time) Quote {
	tier, ok := ActiveTier(tiers, date, c.loc)
	if !ok {
		return Quote{
			Volume:      decimal.NewFromInt(1),
			Free:        true,
			Unavailable: true,
			Price:       c.freeLabel,
			Breakdown:   c.freeLabel,
		}
	}

	q := Quote{
		Volume:        Volume(durationMinutes, tier.PriceUnit),
		PriceUnit:     tier.PriceUnit,
		UnitPrice:     tier.HighestPrice,
		TaxPercentage: tier.TaxPercentage,
		Unavailable:   durationMinutes <= 0,
	}
	q.GrossPrice = q.Volume.Mul(tier.HighestPrice)
	q.LowestGrossPrice = q.Volume.Mul(tier.LowestPrice)
	q.NetPrice = NetOf(q.GrossPrice, tier.TaxPercentage)

	if tier.IsFree() {
		q.Free = true
		q.Price = c.freeLabel
		q.Breakdown = c.freeLabel
		return q
	}

	q.Price = c.format(q.GrossPrice)
	if q.HasRange() {
		q.Price = c.format(q.LowestGrossPrice) + " - " + q.Price
	}
	q.Breakdown = c.breakdown(q)
	return q
}

func (c *Calculator) format(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + c.currency
}

func (c *Calculator) breakdown(q Quote) string {
	tax := ""
	if q.TaxPercentage.IsPositive() {
		tax = fmt.Sprintf(" (VAT %s%%)", q.TaxPercentage.String())
	}
	return fmt.Sprintf("%s x %s%s: %s = %s",
		q.Volume.String(), q.PriceUnit.Label(), tax, c.format(q.UnitPrice), c.format(q.GrossPrice))
}
