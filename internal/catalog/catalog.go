// Package catalog holds the static sample geography of central Erbil.
//
// Records are declared in draw order. Nothing here is mutated after
// initialization; callers receive copies.
package catalog

import (
	"errors"
	"fmt"

	"github.com/smartcity/erbil-dashboard/internal/domain"
)

// Catalog is the typed table of sample records
type Catalog struct {
	LandUse    []domain.LandUseArea     `json:"land_use"`
	Vegetation []domain.VegetationPatch `json:"vegetation"`
	Roads      []domain.RoadSegment     `json:"roads"`
}

// Default returns a copy of the built-in Erbil catalog
func Default() Catalog {
	return Catalog{
		LandUse: []domain.LandUseArea{
			{Category: domain.Commercial, Center: domain.Coordinate{Lat: 36.1901, Lon: 44.0089}, RadiusMeters: 200, ColorTag: "red"},
			{Category: domain.Residential, Center: domain.Coordinate{Lat: 36.1950, Lon: 44.0150}, RadiusMeters: 300, ColorTag: "blue"},
			{Category: domain.Industrial, Center: domain.Coordinate{Lat: 36.1850, Lon: 44.0200}, RadiusMeters: 250, ColorTag: "gray"},
			{Category: domain.GreenSpace, Center: domain.Coordinate{Lat: 36.1935, Lon: 44.0005}, RadiusMeters: 350, ColorTag: "green"},
		},
		Vegetation: []domain.VegetationPatch{
			{Name: "Shanadar Park", Center: domain.Coordinate{Lat: 36.1935, Lon: 44.0005}, SizeMeters: 300, Density: domain.Dense},
			{Name: "Minaret Park", Center: domain.Coordinate{Lat: 36.1880, Lon: 44.0010}, SizeMeters: 200, Density: domain.Moderate},
			{Name: "Citadel Slopes", Center: domain.Coordinate{Lat: 36.1915, Lon: 44.0110}, SizeMeters: 100, Density: domain.Sparse},
		},
		Roads: []domain.RoadSegment{
			{
				Name: "Main Road",
				Path: []domain.Coordinate{
					{Lat: 36.1880, Lon: 44.0000},
					{Lat: 36.1911, Lon: 44.0091},
					{Lat: 36.1940, Lon: 44.0180},
				},
				Class:    domain.MainRoad,
				ColorTag: "red",
				Weight:   5,
			},
			{
				Name: "Secondary Road",
				Path: []domain.Coordinate{
					{Lat: 36.1960, Lon: 44.0050},
					{Lat: 36.1911, Lon: 44.0091},
					{Lat: 36.1870, Lon: 44.0130},
				},
				Class:    domain.SecondaryRoad,
				ColorTag: "orange",
				Weight:   3,
			},
		},
	}
}

// MustDefault returns the built-in catalog and panics if it is malformed
func MustDefault() Catalog {
	c := Default()
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("catalog: built-in catalog invalid: %v", err))
	}
	return c
}

// Validate checks every record for required fields.
// All problems are reported together.
func (c Catalog) Validate() error {
	var errs []error
	for i, a := range c.LandUse {
		if err := validateLandUse(a); err != nil {
			errs = append(errs, fmt.Errorf("land_use[%d]: %w", i, err))
		}
	}
	for i, v := range c.Vegetation {
		if err := validateVegetation(v); err != nil {
			errs = append(errs, fmt.Errorf("vegetation[%d]: %w", i, err))
		}
	}
	for i, r := range c.Roads {
		if err := validateRoad(r); err != nil {
			errs = append(errs, fmt.Errorf("roads[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func validateLandUse(a domain.LandUseArea) error {
	if _, ok := domain.ParseLandUseCategory(string(a.Category)); !ok {
		return fmt.Errorf("unknown category %q", a.Category)
	}
	if err := a.Center.Validate(); err != nil {
		return err
	}
	if a.RadiusMeters <= 0 {
		return fmt.Errorf("radius must be positive, got %f", a.RadiusMeters)
	}
	if a.ColorTag == "" {
		return errors.New("color is required")
	}
	return nil
}

func validateVegetation(v domain.VegetationPatch) error {
	if !v.Density.Valid() {
		return fmt.Errorf("unknown density %q", v.Density)
	}
	if err := v.Center.Validate(); err != nil {
		return err
	}
	if v.SizeMeters <= 0 {
		return fmt.Errorf("size must be positive, got %f", v.SizeMeters)
	}
	return nil
}

func validateRoad(r domain.RoadSegment) error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if !r.Class.Valid() {
		return fmt.Errorf("unknown road class %q", r.Class)
	}
	if len(r.Path) < 2 {
		return fmt.Errorf("path needs at least 2 points, got %d", len(r.Path))
	}
	for j, p := range r.Path {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("path[%d]: %w", j, err)
		}
	}
	if r.ColorTag == "" {
		return errors.New("color is required")
	}
	if r.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %f", r.Weight)
	}
	return nil
}
