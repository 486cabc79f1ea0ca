package domain

import (
	"context"
	"time"
)

// Summary is the text that accompanies the map
type Summary struct {
	Year              int               `json:"year"`
	ActiveLayers      []string          `json:"active_layers"`
	LandUseCategories []LandUseCategory `json:"land_use_categories"`
	LandUseAreas      int               `json:"land_use_areas"`
	VegetationPatches int               `json:"vegetation_patches"`
	RoadSegments      int               `json:"road_segments"`
	RoadLengthKm      float64           `json:"road_length_km"`
	Lines             []string          `json:"lines"`
}

// MapView is one rendered map: base context, ordered primitives and summary
type MapView struct {
	Context    MapContext     `json:"context"`
	Selection  LayerSelection `json:"selection"`
	Primitives []Primitive    `json:"primitives"`
	Summary    Summary        `json:"summary"`
	Seed       int64          `json:"seed"`
	RenderedAt time.Time      `json:"rendered_at"`
}

// RenderLog is an operational record of a single render
type RenderLog struct {
	Selection      LayerSelection
	Seed           int64
	PrimitiveCount int
	RenderedAt     time.Time
}

// RenderLogRepository defines the interface for render log persistence
// The domain owns the interface; adapters live under repository/
type RenderLogRepository interface {
	// EnsureSchema creates the render_logs table if missing
	EnsureSchema(ctx context.Context) error

	// SaveRenderLog persists a render record
	SaveRenderLog(ctx context.Context, log RenderLog) error

	// Health checks database connectivity
	Health(ctx context.Context) error
}
