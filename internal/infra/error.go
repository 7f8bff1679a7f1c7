package infra

import (
	"errors"
	"log/slog"

	"event-booking/internal/pkg/errs"
	"event-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string // set for constraint violations
	msg        string
	err        error // wrapped low-level error
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

// WrapRepoErr classifies err. An explicit kind wins over classification.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind, constraint := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if kind == KindDBFailure {
		slog.Error("Repository error: "+msg,
			slog.String("kind", string(kind)),
			slog.Any("error", err))
	} else {
		slog.Debug("Repository error: "+msg,
			slog.String("kind", string(kind)),
			slog.String("constraint", constraint))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

func classify(err error) (RepositoryErrorKind, string) {
	if err == nil {
		return KindDBFailure, ""
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return KindDuplicateKey, pgErr.ConstraintName
		case pgErrCodeForeignKeyViolation:
			return KindForeignKeyViolated, pgErr.ConstraintName
		}
	}
	return KindDBFailure, ""
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ViolatedConstraint returns the constraint name of a classified violation, or "".
func ViolatedConstraint(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

// Constraint names declared by migrations/001_initial_schema.sql.
const (
	ConstraintBookingUserEvent = "bookings_user_event_key"
	ConstraintBookingUserFK    = "bookings_user_id_fkey"
	ConstraintBookingEventFK   = "bookings_event_id_fkey"
	ConstraintUserEmail        = "users_email_lower_key"
)
