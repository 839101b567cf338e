// FilePath: server/readings/internal/database/database.go
package database

import (
	"context"
	"fmt"

	"github.com/itsatony/w4b_v3/server/readings/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/marcboeker/go-duckdb"
	nuts "github.com/vaudience/go-nuts"
)

// DB is an interface that every backing database must implement
type DB interface {
	Close() error
	Ping(ctx context.Context) error
	GetDB() *sqlx.DB
}

// PostgresDB represents a PostgreSQL database connection
type PostgresDB struct {
	db *sqlx.DB
}

// DuckDB represents a connection to a local DuckDB database file
type DuckDB struct {
	db *sqlx.DB
}

// Open connects to the database selected by cfg.Driver
func Open(cfg config.DatabaseConfig) (DB, error) {
	switch cfg.Driver {
	case config.DriverDuckDB:
		return NewDuckDB(cfg.DuckDB)
	case config.DriverPostgres:
		return NewPostgresDB(cfg.Postgres)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg config.PostgresConfig) (DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to PostgreSQL: %w", err)
	}

	nuts.L.Infof("[PostgresDB] Connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	return &PostgresDB{db: db}, nil
}

// NewDuckDB opens (creating if needed) the DuckDB file at cfg.Path.
// An empty path opens an in-memory database.
func NewDuckDB(cfg config.DuckDBConfig) (DB, error) {
	db, err := sqlx.Connect("duckdb", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("error opening DuckDB: %w", err)
	}

	nuts.L.Infof("[DuckDB] Opened %q", cfg.Path)
	return &DuckDB{db: db}, nil
}

// Implementation of DB interface for PostgresDB
func (p *PostgresDB) Close() error {
	return p.db.Close()
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresDB) GetDB() *sqlx.DB {
	return p.db
}

// Implementation of DB interface for DuckDB
func (d *DuckDB) Close() error {
	return d.db.Close()
}

func (d *DuckDB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DuckDB) GetDB() *sqlx.DB {
	return d.db
}
