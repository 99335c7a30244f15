package cockroach

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes classified by the package.
const (
	CodeSerializationFailure = "40001"
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeCheckViolation       = "23514"
)

// SQLState returns the SQLSTATE code carried by err, or "" when err does not
// come from pgx or lib/pq.
func SQLState(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsRetryable reports whether the transaction that failed with err should be
// retried by the client.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if SQLState(err) == CodeSerializationFailure {
		return true
	}
	return containsAny(err.Error(), "restart transaction", "TransactionRetryWithProtoRefreshError")
}

// IsUniqueViolation reports if the error resulted from a uniqueness constraint violation.
func IsUniqueViolation(err error) bool {
	return hasState(err, CodeUniqueViolation, "violates unique constraint", "duplicate key value")
}

// IsForeignKeyViolation reports if the error resulted from a foreign-key constraint violation.
func IsForeignKeyViolation(err error) bool {
	return hasState(err, CodeForeignKeyViolation, "violates foreign key constraint")
}

// IsCheckViolation reports if the error resulted from a check constraint violation.
func IsCheckViolation(err error) bool {
	return hasState(err, CodeCheckViolation, "violates check constraint", "failed to satisfy CHECK constraint")
}

// hasState matches the SQLSTATE code and falls back to the message for
// wrappers that drop the driver error.
func hasState(err error, code string, fallback ...string) bool {
	if err == nil {
		return false
	}
	if s := SQLState(err); s != "" {
		return s == code
	}
	return containsAny(err.Error(), fallback...)
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
