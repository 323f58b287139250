package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgErrorMap translates PostgreSQL error codes of one table's statements
// into store sentinels.
type pgErrorMap map[string]error

var entityTypeErrors = pgErrorMap{
	pgerrcode.UniqueViolation: ErrSlugAlreadyExists,
	// id is not a uuid
	pgerrcode.InvalidTextRepresentation: ErrEntityTypeNotFound,
}

var entityErrors = pgErrorMap{
	// type_id references no entity type
	pgerrcode.ForeignKeyViolation:       ErrEntityTypeNotFound,
	pgerrcode.InvalidTextRepresentation: ErrEntityNotFound,
}

func (m pgErrorMap) translate(err error) error {
	if sentinel, ok := m[postgresError(err)]; ok {
		return sentinel
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

// transientCodes are the connection and rollback classes (08, 40, 57P03):
// the statement did not run and would likely succeed later. Requests are
// not retried; the flag only goes to the log.
var transientCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

func isTransient(err error) bool {
	_, ok := transientCodes[postgresError(err)]
	return ok
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
