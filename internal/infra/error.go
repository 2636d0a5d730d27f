package infra

import (
	"errors"

	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

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

// WrapRepoErr wraps err with msg. Without an explicit kind, the kind is
// derived from the driver error.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, msg: msg, err: err}
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return KindDuplicateKey
		case pgErrForeignKeyViolation:
			return KindForeignKeyViolated
		}
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
