package queries

import (
	"time"

	"reservation-engine/internal/domain/reservation"
)

type LifecycleView struct {
	CanApprove          bool
	CanDeny             bool
	CanReturnToHandling bool
	CanEdit             bool
	Actions             []reservation.Action
}

type LifecycleQueries interface {
	Evaluate(state reservation.State, end time.Time) LifecycleView
}

type lifecycleQueriesImpl struct {
	guard *reservation.LifecycleGuard
}

func NewLifecycleQueries(guard *reservation.LifecycleGuard) LifecycleQueries {
	return &lifecycleQueriesImpl{guard: guard}
}

func (q *lifecycleQueriesImpl) Evaluate(state reservation.State, end time.Time) LifecycleView {
	return LifecycleView{
		CanApprove:          q.guard.CanApprove(state, end),
		CanDeny:             q.guard.CanDeny(state, end),
		CanReturnToHandling: q.guard.CanReturnToHandling(state, end),
		CanEdit:             q.guard.CanEdit(state, end),
		Actions:             q.guard.Actions(state, end),
	}
}
