package user

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation reports whether err is a unique constraint failure on one
// of the given constraints. Postgres reports the constraint name, SQLite the
// table.column pair.
func isUniqueViolation(err error, constraints ...string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return false
		}
		for _, c := range constraints {
			if pgErr.ConstraintName == c {
				return true
			}
		}
		return false
	}

	errMsg := strings.ToLower(err.Error())
	if !strings.Contains(errMsg, "duplicate key value") && !strings.Contains(errMsg, "unique constraint failed") {
		return false
	}
	for _, c := range constraints {
		if strings.Contains(errMsg, strings.ToLower(c)) {
			return true
		}
	}
	return false
}
