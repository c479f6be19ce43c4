package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var ErrInvalidDecimalValue = errors.New("invalid decimal value in pgtype.Text")

func Int32PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	return pd.Time
}

// DecimalFromText reads a numeric column selected as text. NULL maps to zero.
func DecimalFromText(pt pgtype.Text) (decimal.Decimal, error) {
	if !pt.Valid || pt.String == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(pt.String)
	if err != nil {
		return decimal.Zero, ErrInvalidDecimalValue
	}
	return d, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
