package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps a *sql.DB together with the migration set it owns.
type DB struct {
	*sql.DB
	migrate func(*sql.DB) error
	logger  *logger.Logger
}

// Migrate applies the migrations of the database flavour db was opened with.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return errors.New("no migrations registered for db")
	}
	return db.migrate(db.DB)
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:      conn,
		logger:  log,
		migrate: migrations.MigrateServer,
	}

	return db, nil
}
