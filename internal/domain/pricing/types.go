package pricing

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPricingType = errors.New("invalid pricing type")
	ErrInvalidPriceUnit   = errors.New("invalid price unit")
)

type PricingType string

const (
	PricingTypeFree PricingType = "FREE"
	PricingTypePaid PricingType = "PAID"
)

func ParsePricingType(v string) (PricingType, error) {
	switch t := PricingType(strings.ToUpper(strings.TrimSpace(v))); t {
	case PricingTypeFree, PricingTypePaid:
		return t, nil
	default:
		return "", ErrInvalidPricingType
	}
}

type PriceUnit string

const (
	PriceUnitFixed      PriceUnit = "FIXED"
	PriceUnitPer15Mins  PriceUnit = "PER_15_MINS"
	PriceUnitPer30Mins  PriceUnit = "PER_30_MINS"
	PriceUnitPerHour    PriceUnit = "PER_HOUR"
	PriceUnitPerHalfDay PriceUnit = "PER_HALF_DAY"
	PriceUnitPerDay     PriceUnit = "PER_DAY"
	PriceUnitPerWeek    PriceUnit = "PER_WEEK"
)

func ParsePriceUnit(v string) (PriceUnit, error) {
	switch u := PriceUnit(strings.ToUpper(strings.TrimSpace(v))); u {
	case PriceUnitFixed, PriceUnitPer15Mins, PriceUnitPer30Mins, PriceUnitPerHour,
		PriceUnitPerHalfDay, PriceUnitPerDay, PriceUnitPerWeek:
		return u, nil
	default:
		return "", ErrInvalidPriceUnit
	}
}

// Minutes is the length of one billable unit. Units that cannot be split report 1.
func (u PriceUnit) Minutes() int {
	switch u {
	case PriceUnitPer15Mins:
		return 15
	case PriceUnitPer30Mins:
		return 30
	case PriceUnitPerHour:
		return 60
	default:
		return 1
	}
}

// Subdividable reports whether partial units are billed; other units always count as one.
func (u PriceUnit) Subdividable() bool {
	return u.Minutes() > 1
}

func (u PriceUnit) Label() string {
	switch u {
	case PriceUnitFixed:
		return "fixed"
	case PriceUnitPer15Mins:
		return "per 15 minutes"
	case PriceUnitPer30Mins:
		return "per 30 minutes"
	case PriceUnitPerHour:
		return "per hour"
	case PriceUnitPerHalfDay:
		return "per half day"
	case PriceUnitPerDay:
		return "per day"
	case PriceUnitPerWeek:
		return "per week"
	default:
		return strings.ToLower(string(u))
	}
}
