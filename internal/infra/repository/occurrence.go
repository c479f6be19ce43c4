package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"reservation-engine/internal/domain/reservation"
	"reservation-engine/internal/infra"
	"reservation-engine/internal/infra/db"
	"reservation-engine/internal/infra/sqlbuilder"
	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/pgconv"
	"reservation-engine/internal/usecase/commands"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrOccurrenceNotEditable = errors.New("occurrence is not confirmed or does not exist")

type OccurrenceRepository struct {
	db  db.DBTX
	loc *time.Location
}

// NewOccurrenceRepository uses loc to resolve times of day to instants.
func NewOccurrenceRepository(conn db.DBTX, loc *time.Location) *OccurrenceRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &OccurrenceRepository{db: conn, loc: loc}
}

func interval(d time.Duration) string {
	return fmt.Sprintf("%d seconds", int64(d/time.Second))
}

// atTimeOfDay keeps the local calendar date of column and replaces its time of day.
func (r *OccurrenceRepository) atTimeOfDay(column string, tod time.Duration) sq.Sqlizer {
	return sq.Expr(
		fmt.Sprintf("((%s AT TIME ZONE ?)::date + ?::interval) AT TIME ZONE ?", column),
		r.loc.String(), interval(tod), r.loc.String(),
	)
}

func (r *OccurrenceRepository) mutateQuery(id uuid.UUID, p reservation.OccurrencePatch) sq.UpdateBuilder {
	q := sqlbuilder.Update("reservations").
		Set("updated_at", sq.Expr("now()"))

	if p.StartTimeOfDay != nil {
		q = q.Set("begin_at", r.atTimeOfDay("begin_at", *p.StartTimeOfDay))
	}
	if p.EndTimeOfDay != nil {
		q = q.Set("end_at", r.atTimeOfDay("end_at", *p.EndTimeOfDay))
	}
	if p.BufferBefore != nil {
		q = q.Set("buffer_time_before", int32(*p.BufferBefore/time.Second))
	}
	if p.BufferAfter != nil {
		q = q.Set("buffer_time_after", int32(*p.BufferAfter/time.Second))
	}
	if p.State != nil {
		q = q.Set("state", p.State.String())
	}
	if p.DenyReasonID != nil {
		q = q.Set("deny_reason_id", *p.DenyReasonID)
	}
	if p.HandlingDetails != nil {
		q = q.Set("handling_details", *p.HandlingDetails)
	}

	return q.Where(sq.Eq{"id": id}).Where(sq.Eq{"state": reservation.StateConfirmed.String()})
}

// MutateOccurrence applies the patch to a single confirmed occurrence. Returned errors are
// tagged for the batch runner: connection problems are transient, rejected data is validation.
func (r *OccurrenceRepository) MutateOccurrence(ctx context.Context, id uuid.UUID, p reservation.OccurrencePatch) error {
	query, args, err := r.mutateQuery(id, p).ToSql()
	if err != nil {
		return commands.NewValidationError(errs.Wrap(err, "build occurrence update"))
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return classifyMutationError(err)
	}
	if tag.RowsAffected() == 0 {
		return commands.NewValidationError(infra.WrapRepoErr("occurrence not updated", ErrOccurrenceNotEditable, infra.KindConflict))
	}
	return nil
}

func classifyMutationError(err error) error {
	if isTransient(err) {
		return commands.NewTransientError(infra.WrapRepoErr("occurrence update interrupted", err, infra.KindUnavailable))
	}

	kind := infra.KindValidation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505") {
		kind = infra.KindConflict
	}
	if pgconv.IsNoRows(err) {
		kind = infra.KindNotFound
	}
	return commands.NewValidationError(infra.WrapRepoErr("occurrence update rejected", err, kind))
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "40001", pgErr.Code == "40P01", pgErr.Code == "57P01":
			return true
		case len(pgErr.Code) == 5 && pgErr.Code[:2] == "08":
			return true
		default:
			return false
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
