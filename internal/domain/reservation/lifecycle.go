package reservation

import (
	"errors"
	"time"

	"reservation-engine/internal/pkg/clock"
)

var ErrActionNotAllowed = errors.New("action is not allowed in the current state")

// DefaultEditGracePeriod is how long after its end a confirmed reservation stays editable.
const DefaultEditGracePeriod = time.Hour

type Action string

const (
	ActionApprove          Action = "approve"
	ActionDeny             Action = "deny"
	ActionReturnToHandling Action = "return_to_handling"
	ActionEdit             Action = "edit"
)

// LifecycleGuard answers which staff actions are legal for a reservation right now.
// Calendar-day comparisons happen in loc, never in the host's zone.
type LifecycleGuard struct {
	clock     clock.Clock
	loc       *time.Location
	editGrace time.Duration
}

func NewLifecycleGuard(clk clock.Clock, loc *time.Location, editGrace time.Duration) *LifecycleGuard {
	if loc == nil {
		loc = time.UTC
	}
	if editGrace < 0 {
		editGrace = 0
	}
	return &LifecycleGuard{
		clock:     clk,
		loc:       loc,
		editGrace: editGrace,
	}
}

func (g *LifecycleGuard) Location() *time.Location {
	return g.loc
}

func (g *LifecycleGuard) CanApprove(state State, end time.Time) bool {
	return canApprove(state, end, g.clock.Now())
}

func (g *LifecycleGuard) CanDeny(state State, end time.Time) bool {
	return canDeny(state, end, g.clock.Now())
}

func (g *LifecycleGuard) CanReturnToHandling(state State, end time.Time) bool {
	return canReturnToHandling(state, end, g.clock.Now())
}

// CanEdit allows edits of confirmed reservations until editGrace after their end, and for
// the rest of the calendar day on which they ended.
func (g *LifecycleGuard) CanEdit(state State, end time.Time) bool {
	now := g.clock.Now()
	if state != StateConfirmed || end.IsZero() {
		return false
	}
	return end.After(now.Add(-g.editGrace)) || clock.SameDay(end, now, g.loc)
}

func (g *LifecycleGuard) Allows(action Action, state State, end time.Time) bool {
	switch action {
	case ActionApprove:
		return g.CanApprove(state, end)
	case ActionDeny:
		return g.CanDeny(state, end)
	case ActionReturnToHandling:
		return g.CanReturnToHandling(state, end)
	case ActionEdit:
		return g.CanEdit(state, end)
	default:
		return false
	}
}

// Actions lists the legal actions in a stable order.
func (g *LifecycleGuard) Actions(state State, end time.Time) []Action {
	actions := []Action{}
	for _, a := range []Action{ActionApprove, ActionDeny, ActionReturnToHandling, ActionEdit} {
		if g.Allows(a, state, end) {
			actions = append(actions, a)
		}
	}
	return actions
}

// NextState is the state a guarded action leads to. It does not check timing.
func NextState(action Action, state State) (State, error) {
	switch {
	case action == ActionApprove && state == StateRequiresHandling:
		return StateConfirmed, nil
	case action == ActionDeny && (state == StateRequiresHandling || state == StateConfirmed):
		return StateDenied, nil
	case action == ActionReturnToHandling && (state == StateDenied || state == StateConfirmed):
		return StateRequiresHandling, nil
	case action == ActionEdit && state == StateConfirmed:
		return StateConfirmed, nil
	default:
		return "", ErrActionNotAllowed
	}
}

func canApprove(state State, end, now time.Time) bool {
	return state == StateRequiresHandling && end.After(now)
}

func canDeny(state State, end, now time.Time) bool {
	if state == StateRequiresHandling {
		return true
	}
	return state == StateConfirmed && end.After(now)
}

func canReturnToHandling(state State, end, now time.Time) bool {
	return (state == StateDenied || state == StateConfirmed) && end.After(now)
}
