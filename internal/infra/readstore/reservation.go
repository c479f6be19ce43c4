package readstore

import (
	"context"
	"log/slog"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/db"
	"reservation-engine/internal/infra/sqlbuilder"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type reservationRow struct {
	ID           uuid.UUID
	BeginAt      pgtype.Timestamptz
	EndAt        pgtype.Timestamptz
	State        string
	Type         pgtype.Text
	BufferBefore pgtype.Int4
	BufferAfter  pgtype.Int4
}

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(conn db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: conn}
}

func reservationsForUnitQuery(unitID uuid.UUID, from, to time.Time, states []reservation.State) sq.SelectBuilder {
	stateNames := make([]string, len(states))
	for i, s := range states {
		stateNames[i] = s.String()
	}

	return sqlbuilder.Select(
		"id",
		"begin_at",
		"end_at",
		"state",
		"type",
		"buffer_time_before",
		"buffer_time_after",
	).
		From("reservations").
		Where(sq.Eq{"unit_id": unitID}).
		Where(sq.Lt{"begin_at": to}).
		Where(sq.Gt{"end_at": from}).
		Where(sq.Eq{"state": stateNames}).
		OrderBy("begin_at")
}

// FetchReservationsForUnit loads reservations of a unit overlapping [from, to) in the given states.
// Rows that cannot form a valid reservation are skipped.
func (r *ReservationReadStore) FetchReservationsForUnit(
	ctx context.Context,
	unitID uuid.UUID,
	from, to time.Time,
	states []reservation.State,
) ([]*reservation.Reservation, error) {
	query, args, err := reservationsForUnitQuery(unitID, from, to, states).ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build reservations for unit query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch reservations for unit", err)
	}
	defer rows.Close()

	result := []*reservation.Reservation{}
	for rows.Next() {
		var row reservationRow
		if err := rows.Scan(
			&row.ID,
			&row.BeginAt,
			&row.EndAt,
			&row.State,
			&row.Type,
			&row.BufferBefore,
			&row.BufferAfter,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}

		res, err := rowToReservation(row)
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed reservation row",
				"reservation_id", row.ID.String(),
				"error", err,
			)
			continue
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func rowToReservation(row reservationRow) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(row.BeginAt), pgconv.TimeFromPgtype(row.EndAt))
	if err != nil {
		return nil, err
	}
	state, err := reservation.ParseState(row.State)
	if err != nil {
		return nil, err
	}
	typ, err := reservation.ParseType(row.Type.String)
	if err != nil {
		return nil, err
	}

	return reservation.NewReservation(
		row.ID,
		slot,
		state,
		typ,
		reservation.BuffersFromSeconds(pgconv.Int32PtrFromPgtype(row.BufferBefore), pgconv.Int32PtrFromPgtype(row.BufferAfter)),
	)
}

func seriesOccurrencesQuery(seriesID uuid.UUID) sq.SelectBuilder {
	return sqlbuilder.Select("id", "begin_at", "end_at", "state").
		From("reservations").
		Where(sq.Eq{"series_id": seriesID}).
		OrderBy("begin_at", "id")
}

func seriesExistsQuery(seriesID uuid.UUID) sq.SelectBuilder {
	return sqlbuilder.Select("1").
		From("reservation_series").
		Where(sq.Eq{"id": seriesID})
}

// FetchSeriesOccurrences returns every occurrence of a series ordered by begin time.
// Occurrences with an unknown state are returned with an empty state and are never eligible for edits.
func (r *ReservationReadStore) FetchSeriesOccurrences(ctx context.Context, seriesID uuid.UUID) ([]reservation.Occurrence, error) {
	query, args, err := seriesOccurrencesQuery(seriesID).ToSql()
	if err != nil {
		return nil, errs.Wrap(err, "build series occurrences query")
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch series occurrences", err)
	}
	defer rows.Close()

	result := []reservation.Occurrence{}
	for rows.Next() {
		var (
			id         uuid.UUID
			begin, end pgtype.Timestamptz
			stateName  string
		)
		if err := rows.Scan(&id, &begin, &end, &stateName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occurrence row", err)
		}
		state, _ := reservation.ParseState(stateName)
		result = append(result, reservation.Occurrence{
			ID:    id,
			Begin: pgconv.TimeFromPgtype(begin),
			End:   pgconv.TimeFromPgtype(end),
			State: state,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occurrence rows", err)
	}

	if len(result) == 0 {
		if err := r.ensureSeriesExists(ctx, seriesID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *ReservationReadStore) ensureSeriesExists(ctx context.Context, seriesID uuid.UUID) error {
	query, args, err := seriesExistsQuery(seriesID).ToSql()
	if err != nil {
		return errs.Wrap(err, "build series exists query")
	}

	var one int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if pgconv.IsNoRows(err) {
			return errs.Mark(infra.WrapRepoErr("series not found", err, infra.KindNotFound), errs.ErrSeriesNotFound)
		}
		return infra.WrapRepoErr("failed to check series", err)
	}
	return nil
}
