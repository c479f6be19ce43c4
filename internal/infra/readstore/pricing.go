package readstore

import (
	"context"

	"reservation-engine/internal/domain/pricing"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/db"
	"reservation-engine/internal/infra/sqlbuilder"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type pricingRow struct {
	Begins        pgtype.Date
	PricingType   string
	PriceUnit     string
	LowestPrice   pgtype.Text
	HighestPrice  pgtype.Text
	TaxPercentage pgtype.Text
}

type PricingReadStore struct {
	db db.DBTX
}

func NewPricingReadStore(conn db.DBTX) *PricingReadStore {
	return &PricingReadStore{db: conn}
}

// Numeric columns are selected as text so they reach decimal.Decimal without float rounding.
func pricingTiersQuery(resourceID uuid.UUID) sq.SelectBuilder {
	return sqlbuilder.Select(
		"begins",
		"pricing_type",
		"price_unit",
		"lowest_price::text",
		"highest_price::text",
		"tax_percentage::text",
	).
		From("resource_pricing").
		Where(sq.Eq{"resource_id": resourceID}).
		OrderBy("begins")
}

func (r *PricingReadStore) FetchPricingTiers(ctx context.Context, resourceID uuid.UUID) ([]pricing.Tier, error) {
	query, args, err := pricingTiersQuery(resourceID).ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build pricing tiers query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch pricing tiers", err)
	}
	defer rows.Close()

	tiers := []pricing.Tier{}
	for rows.Next() {
		var row pricingRow
		if err := rows.Scan(
			&row.Begins,
			&row.PricingType,
			&row.PriceUnit,
			&row.LowestPrice,
			&row.HighestPrice,
			&row.TaxPercentage,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing row", err)
		}

		tier, err := rowToTier(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid pricing row", err, infra.KindValidation)
		}
		tiers = append(tiers, tier)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing rows", err)
	}

	return tiers, nil
}

// rowToTier applies the zero default to missing prices and tax.
func rowToTier(row pricingRow) (pricing.Tier, error) {
	pricingType, err := pricing.ParsePricingType(row.PricingType)
	if err != nil {
		return pricing.Tier{}, err
	}
	unit, err := pricing.ParsePriceUnit(row.PriceUnit)
	if err != nil {
		return pricing.Tier{}, err
	}
	lowest, err := pgconv.DecimalFromText(row.LowestPrice)
	if err != nil {
		return pricing.Tier{}, err
	}
	highest, err := pgconv.DecimalFromText(row.HighestPrice)
	if err != nil {
		return pricing.Tier{}, err
	}
	tax, err := pgconv.DecimalFromText(row.TaxPercentage)
	if err != nil {
		return pricing.Tier{}, err
	}

	return pricing.Tier{
		Begins:        pgconv.DateFromPgtype(row.Begins),
		PricingType:   pricingType,
		PriceUnit:     unit,
		LowestPrice:   lowest,
		HighestPrice:  highest,
		TaxPercentage: tax,
	}, nil
}
