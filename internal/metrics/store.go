package metrics

import (
	"context"
	"database/sql"
	"fmt"

	"weeks-worth/internal/metrics/metrics_db"
)

// Counts is a snapshot of how much the application stores.
type Counts struct {
	Individuals int64 `json:"individuals"`
	Groups      int64 `json:"groups"`
	Recipes     int64 `json:"recipes"`
	Meals       int64 `json:"meals"`
}

// Health is the payload of the health endpoint.
type Health struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	System   SysHealth `json:"system"`
	Counts   *Counts   `json:"counts,omitempty"`
}

// Store reads usage figures from SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Counts returns the number of stored individuals, groups, recipes and meals.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	row, err := s.queries.CountEntities(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to count entities: %w", err)
	}
	return Counts{
		Individuals: row.Individuals,
		Groups:      row.Groups,
		Recipes:     row.Recipes,
		Meals:       row.Meals,
	}, nil
}

// Health checks the database and collects process metrics. A failing
// database turns the status to "degraded" instead of returning an error.
func (s *Store) Health(ctx context.Context, dataPath string) Health {
	h := Health{Status: "ok", Database: "ok", System: GetSysHealth(dataPath)}

	if err := s.db.PingContext(ctx); err != nil {
		h.Status, h.Database = "degraded", err.Error()
		return h
	}
	counts, err := s.Counts(ctx)
	if err != nil {
		h.Status, h.Database = "degraded", err.Error()
		return h
	}
	h.Counts = &counts
	return h
}
