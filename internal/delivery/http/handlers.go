package http

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/erbil-dashboard/internal/domain"
	"github.com/smartcity/erbil-dashboard/internal/render"
	"github.com/smartcity/erbil-dashboard/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	mapSvc    *service.MapService
	animation *service.AnimationLoader
}

// NewHandler creates a new handler
func NewHandler(mapSvc *service.MapService, animation *service.AnimationLoader) *Handler {
	return &Handler{
		mapSvc:    mapSvc,
		animation: animation,
	}
}

// mapRequest is the POST body for a render
type mapRequest struct {
	domain.LayerSelection
	Seed *int64 `json:"seed,omitempty"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	database := "ok"
	if err := h.mapSvc.Health(ctx); err != nil {
		database = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "erbil-dashboard",
		"version":  "1.0.0",
		"database": database,
	})
}

// GetCatalog returns the static sample catalog
func (h *Handler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.mapSvc.Catalog(),
	})
}

// GetMap renders the map for a selection given as query parameters
func (h *Handler) GetMap(c *fiber.Ctx) error {
	sel, seed, err := selectionFromQuery(c)
	if err != nil {
		return err
	}

	view := h.mapSvc.Render(c.UserContext(), sel, seed)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    view,
	})
}

// PostMap renders the map for a selection given as a JSON body
func (h *Handler) PostMap(c *fiber.Ctx) error {
	var req mapRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Year = defaultYear(req.Year)

	view := h.mapSvc.Render(c.UserContext(), req.LayerSelection, req.Seed)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    view,
	})
}

// GetMapGeoJSON renders the map as a GeoJSON FeatureCollection
func (h *Handler) GetMapGeoJSON(c *fiber.Ctx) error {
	sel, seed, err := selectionFromQuery(c)
	if err != nil {
		return err
	}

	view := h.mapSvc.Render(c.UserContext(), sel, seed)
	fc := render.FeatureCollection(view.Context, view.Primitives)

	body, err := fc.MarshalJSON()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode map")
	}
	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(body)
}

// GetAnimation returns the loading animation, or marks it unavailable
func (h *Handler) GetAnimation(c *fiber.Ctx) error {
	doc, err := h.animation.Load(c.UserContext())
	if err != nil {
		log.Printf("Animation unavailable: %v", err)
		return c.JSON(domain.AnimationResponse{
			Success:   true,
			Available: false,
			Message:   "animation unavailable",
		})
	}

	return c.JSON(domain.AnimationResponse{
		Success:   true,
		Available: true,
		Data:      doc,
	})
}

// selectionFromQuery reads layer toggles, categories, year and seed.
// Only a malformed seed is rejected; everything else is normalized later.
func selectionFromQuery(c *fiber.Ctx) (domain.LayerSelection, *int64, error) {
	sel := domain.LayerSelection{
		ShowLandUse:    c.QueryBool("landuse", false),
		ShowClimate:    c.QueryBool("climate", false),
		ShowVegetation: c.QueryBool("vegetation", false),
		ShowRoads:      c.QueryBool("roads", false),
		ShowDensity:    c.QueryBool("density", false),
		Year:           defaultYear(c.QueryInt("year", 0)),
	}

	if raw := c.Query("categories"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				sel.LandUseCategories = append(sel.LandUseCategories, domain.LandUseCategory(tag))
			}
		}
	}

	var seed *int64
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.LayerSelection{}, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid seed")
		}
		seed = &v
	}

	return sel, seed, nil
}

// defaultYear treats a missing or zero year as the latest slider position
func defaultYear(year int) int {
	if year == 0 {
		return domain.MaxYear
	}
	return year
}
