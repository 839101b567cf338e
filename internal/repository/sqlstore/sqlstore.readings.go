// FilePath: server/readings/internal/repository/sqlstore/sqlstore.readings.go
package sqlstore

import (
	"context"
	"strings"

	"github.com/itsatony/w4b_v3/server/readings/internal/database"
	"github.com/itsatony/w4b_v3/server/readings/internal/errors"
	"github.com/itsatony/w4b_v3/server/readings/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

type ReadingRepo struct {
	SQLBaseRepo
}

func NewReadingRepository(db database.DB) (*ReadingRepo, error) {
	repo := &ReadingRepo{SQLBaseRepo: SQLBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ReadingRepo) initializeSchema() error {
	query := `CREATE TABLE IF NOT EXISTS readings (
		device_uuid TEXT,
		type TEXT,
		value INTEGER,
		date_created BIGINT
	)`

	if _, err := r.db.GetDB().Exec(query); err != nil {
		return errors.NewDatabaseError("failed to initialize schema", err)
	}
	return nil
}

func (r *ReadingRepo) Insert(ctx context.Context, reading *models.Reading) error {
	query := `
		INSERT INTO readings (device_uuid, type, value, date_created)
		VALUES (?, ?, ?, ?)`

	_, err := r.ExecContext(ctx, query, reading.DeviceUUID, string(reading.Type), reading.Value, reading.DateCreated)
	if err != nil {
		nuts.L.Errorf("[ReadingRepo] Failed to insert reading for device %s: %v", reading.DeviceUUID, err)
		return err
	}
	return nil
}

// Query returns every reading matching filter, oldest first
func (r *ReadingRepo) Query(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error) {
	where, args := buildWhere(filter)
	query := `
		SELECT device_uuid, type, value, date_created
		FROM readings
		WHERE ` + where + `
		ORDER BY date_created ASC`

	readings := []models.Reading{}
	if err := r.SelectContext(ctx, &readings, query, args...); err != nil {
		return nil, err
	}
	return readings, nil
}

// Values returns only the value column of the readings matching filter
func (r *ReadingRepo) Values(ctx context.Context, filter models.ReadingFilter) ([]int, error) {
	where, args := buildWhere(filter)
	query := `SELECT value FROM readings WHERE ` + where + ` ORDER BY date_created ASC`

	values := []int{}
	if err := r.SelectContext(ctx, &values, query, args...); err != nil {
		return nil, err
	}
	return values, nil
}

func buildWhere(filter models.ReadingFilter) (string, []interface{}) {
	clauses := []string{"device_uuid = ?"}
	args := []interface{}{filter.DeviceUUID}

	if filter.Type != "" {
		clauses = append(clauses, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Start != nil {
		clauses = append(clauses, "date_created >= ?")
		args = append(args, *filter.Start)
	}
	if filter.End != nil {
		clauses = append(clauses, "date_created <= ?")
		args = append(args, *filter.End)
	}
	return strings.Join(clauses, " AND "), args
}
