package commands

import (
	"fmt"

	"reservation-engine/internal/pkg/errs"
)

type MutationErrorKind string

const (
	MutationErrorValidation       MutationErrorKind = "VALIDATION"
	MutationErrorTransientNetwork MutationErrorKind = "TRANSIENT_NETWORK"
	MutationErrorPermanent        MutationErrorKind = "PERMANENT"
)

// MutationError tags a failed occurrence mutation with the kind that decides whether it is retried.
type MutationError struct {
	Kind MutationErrorKind
	Err  error
}

func (e *MutationError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error) error {
	return &MutationError{Kind: MutationErrorValidation, Err: err}
}

func NewTransientError(err error) error {
	return &MutationError{Kind: MutationErrorTransientNetwork, Err: err}
}

// KindOf returns the tagged kind of err. Untagged errors count as validation failures.
func KindOf(err error) MutationErrorKind {
	var me *MutationError
	if errs.As(err, &me) && me.Kind != "" {
		return me.Kind
	}
	return MutationErrorValidation
}
