package queries

import (
	"context"
	"time"

	"reservation-engine/internal/domain/pricing"
	"reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type PricingReadStore interface {
	FetchPricingTiers(ctx context.Context, resourceID uuid.UUID) ([]pricing.Tier, error)
}

type PricingQueries interface {
	Quote(ctx context.Context, resourceID uuid.UUID, durationMinutes int, date time.Time) (pricing.Quote, error)
}

type pricingQueriesImpl struct {
	store      PricingReadStore
	calculator *pricing.Calculator
}

func NewPricingQueries(store PricingReadStore, calculator *pricing.Calculator) PricingQueries {
	return &pricingQueriesImpl{store: store, calculator: calculator}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, resourceID uuid.UUID, durationMinutes int, date time.Time) (pricing.Quote, error) {
	tiers, err := q.store.FetchPricingTiers(ctx, resourceID)
	if err != nil {
		return pricing.Quote{}, errs.Wrap(err, "fetch pricing tiers")
	}
	return q.calculator.ComputePrice(durationMinutes, tiers, date), nil
}
