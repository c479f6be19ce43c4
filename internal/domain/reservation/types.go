package reservation

import (
	"errors"
	"strings"
)

var (
	ErrInvalidState = errors.New("invalid reservation state")
	ErrInvalidType  = errors.New("invalid reservation type")
)

type State string

const (
	StateCreated           State = "CREATED"
	StateWaitingForPayment State = "WAITING_FOR_PAYMENT"
	StateRequiresHandling  State = "REQUIRES_HANDLING"
	StateConfirmed         State = "CONFIRMED"
	StateDenied            State = "DENIED"
	StateCancelled         State = "CANCELLED"
)

// OccupyingStates are the states in which a reservation holds its time span.
var OccupyingStates = []State{
	StateCreated,
	StateWaitingForPayment,
	StateRequiresHandling,
	StateConfirmed,
}

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateCreated, StateWaitingForPayment, StateRequiresHandling,
		StateConfirmed, StateDenied, StateCancelled:
		return true
	default:
		return false
	}
}

func ParseState(v string) (State, error) {
	s := State(strings.ToUpper(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", ErrInvalidState
	}
	return s, nil
}

type Type string

const (
	TypeNormal   Type = "NORMAL"
	TypeStaff    Type = "STAFF"
	TypeBehalf   Type = "BEHALF"
	TypeBlocked  Type = "BLOCKED"
	TypeSeasonal Type = "SEASONAL"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeNormal, TypeStaff, TypeBehalf, TypeBlocked, TypeSeasonal:
		return true
	default:
		return false
	}
}

// ParseType maps an empty value to TypeNormal.
func ParseType(v string) (Type, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return TypeNormal, nil
	}
	t := Type(strings.ToUpper(v))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
