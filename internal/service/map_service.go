package service

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/smartcity/erbil-dashboard/internal/catalog"
	"github.com/smartcity/erbil-dashboard/internal/compose"
	"github.com/smartcity/erbil-dashboard/internal/domain"
	"github.com/smartcity/erbil-dashboard/internal/observability"
)

// MapService runs one render cycle per request
type MapService struct {
	catalog catalog.Catalog
	repo    RenderLogRepository
	clock   clockwork.Clock
	metrics *observability.Metrics

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewMapService creates a new map service
func NewMapService(
	cat catalog.Catalog,
	repo RenderLogRepository,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) *MapService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MapService{
		catalog: cat,
		repo:    repo,
		clock:   clock,
		metrics: metrics,
	}
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *MapService) WaitBackground() {
	s.wgBg.Wait()
}

// Catalog returns the static catalog
func (s *MapService) Catalog() catalog.Catalog {
	return s.catalog
}

// Render composes the map for a selection.
// A nil seed derives one from the clock; pass a seed for reproducible heat clouds.
// The render log save keeps ctx values but outlives its cancellation.
func (s *MapService) Render(ctx context.Context, sel domain.LayerSelection, seed *int64) domain.MapView {
	now := s.clock.Now()
	sel = sel.Normalize()

	var rngSeed int64
	if seed != nil {
		rngSeed = *seed
	} else {
		rngSeed = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	view := domain.MapView{
		Context:    domain.DefaultMapContext(),
		Selection:  sel,
		Primitives: compose.Compose(sel, s.catalog, rng),
		Summary:    compose.Summarize(sel, s.catalog),
		Seed:       rngSeed,
		RenderedAt: now,
	}

	s.metrics.RendersTotal.Inc()
	s.metrics.PrimitivesPerRender.Observe(float64(len(view.Primitives)))
	for _, layer := range view.Summary.ActiveLayers {
		s.metrics.LayerToggles.WithLabelValues(layer).Inc()
	}

	// Persist render log asynchronously (tracked for graceful shutdown)
	entry := domain.RenderLog{
		Selection:      sel,
		Seed:           rngSeed,
		PrimitiveCount: len(view.Primitives),
		RenderedAt:     now,
	}
	saveCtx := context.WithoutCancel(ctx)
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(saveCtx, 5*time.Second)
		defer cancel()
		if err := s.repo.SaveRenderLog(bgCtx, entry); err != nil {
			s.metrics.RenderLogErrors.Inc()
			log.Printf("Failed to save render log: %v", err)
		}
	}()

	return view
}

// Health checks the render log store
func (s *MapService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}
