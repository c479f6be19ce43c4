package infra

import (
	"errors"
	"log/slog"

	"reservation-engine/internal/pkg/errs"
	"reservation-engine/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr defaults to KindDBFailure, or KindNotFound when err is a no-rows error.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	switch {
	case len(kind) > 0:
		k = kind[0]
	case pgconv.IsNoRows(err):
		k = KindNotFound
	}

	slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound    RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure   RepositoryErrorKind = "DB_FAILURE"
	KindConflict    RepositoryErrorKind = "CONFLICT"
	KindValidation  RepositoryErrorKind = "VALIDATION"
	KindUnavailable RepositoryErrorKind = "UNAVAILABLE"
)
