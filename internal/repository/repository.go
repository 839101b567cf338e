// FilePath: server/readings/internal/repository/repository.go
package repository

import (
	"context"

	"github.com/itsatony/w4b_v3/server/readings/internal/models"
)

// ReadingRepository defines the interface for the readings table
type ReadingRepository interface {
	Insert(ctx context.Context, reading *models.Reading) error
	Query(ctx context.Context, filter models.ReadingFilter) ([]models.Reading, error)
	Values(ctx context.Context, filter models.ReadingFilter) ([]int, error)
	Ping(ctx context.Context) error
}
