package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityTypeNotFound is returned when a query or update targets an
	// entity type id that does not exist, or when an entity references one.
	ErrEntityTypeNotFound = errors.New("entity type was not found")

	// ErrEntityNotFound is returned when a query, update or delete targets an
	// entity id that does not exist.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrSlugAlreadyExists is returned when an entity type is created or
	// renamed to a slug another type already holds.
	ErrSlugAlreadyExists = errors.New("entity type slug already exists")

	// ErrBlobNotFound is returned when a stored file is requested by a name
	// that was never issued.
	ErrBlobNotFound = errors.New("file was not found")

	// ErrCorruptedCache is returned when a cached listing cannot be decoded.
	ErrCorruptedCache = errors.New("cached listing is corrupted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a jsonb column value cannot be
	// marshalled or unmarshalled.
	ErrEncodingColumn = errors.New("failed to encode jsonb column")
)
