package sqlstore

import (
	"context"
	"database/sql"

	"github.com/itsatony/w4b_v3/server/readings/internal/database"
	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
)

// SQLBaseRepo holds the helpers shared by repositories on a sqlx connection.
// Queries are written with ? placeholders and rebound for the driver.
type SQLBaseRepo struct {
	db database.DB
}

func (r *SQLBaseRepo) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := r.db.GetDB().ExecContext(ctx, r.db.GetDB().Rebind(query), args...)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to execute query", err)
	}
	return result, nil
}

func (r *SQLBaseRepo) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := r.db.GetDB().SelectContext(ctx, dest, r.db.GetDB().Rebind(query), args...); err != nil {
		return errors.NewDatabaseError("failed to execute query", err)
	}
	return nil
}

func (r *SQLBaseRepo) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return errors.NewDatabaseError("failed to ping database", err)
	}
	return nil
}

func (r *SQLBaseRepo) Close() error {
	if err := r.db.Close(); err != nil {
		return errors.NewDatabaseError("failed to close database", err)
	}
	return nil
}
