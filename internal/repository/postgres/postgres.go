package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartcity/erbil-dashboard/internal/domain"
)

// PostgresRepository implements domain.RenderLogRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const createRenderLogs = `
	CREATE TABLE IF NOT EXISTS render_logs (
		id              BIGSERIAL PRIMARY KEY,
		show_land_use   BOOLEAN NOT NULL,
		show_climate    BOOLEAN NOT NULL,
		show_vegetation BOOLEAN NOT NULL,
		show_roads      BOOLEAN NOT NULL,
		show_density    BOOLEAN NOT NULL,
		categories      TEXT[] NOT NULL DEFAULT '{}',
		year            INTEGER NOT NULL,
		seed            BIGINT NOT NULL,
		primitive_count INTEGER NOT NULL,
		rendered_at     TIMESTAMPTZ NOT NULL
	)
`

// EnsureSchema creates the render_logs table if it does not exist
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createRenderLogs); err != nil {
		return fmt.Errorf("postgres: failed to create render_logs: %w", err)
	}
	return nil
}

// SaveRenderLog persists a render record to PostgreSQL
func (r *PostgresRepository) SaveRenderLog(ctx context.Context, entry domain.RenderLog) error {
	query := `
		INSERT INTO render_logs (
			show_land_use, show_climate, show_vegetation, show_roads, show_density,
			categories, year, seed, primitive_count, rendered_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	sel := entry.Selection
	categories := make([]string, 0, len(sel.LandUseCategories))
	for _, c := range sel.LandUseCategories {
		categories = append(categories, string(c))
	}

	_, err := r.pool.Exec(ctx, query,
		sel.ShowLandUse, sel.ShowClimate, sel.ShowVegetation, sel.ShowRoads, sel.ShowDensity,
		categories, sel.Year, entry.Seed, entry.PrimitiveCount, entry.RenderedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save render log: %w", err)
	}

	return nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (r *PostgresRepository) Close() {
	r.pool.Close()
}
