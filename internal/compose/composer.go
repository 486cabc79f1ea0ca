// Package compose decides which overlays are drawn for a layer selection.
package compose

import (
	"fmt"
	"strings"

	"github.com/smartcity/erbil-dashboard/internal/catalog"
	"github.com/smartcity/erbil-dashboard/internal/domain"
	"github.com/smartcity/erbil-dashboard/pkg/utils"
)

// RandomSource supplies uniform draws in [0,1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Overlay constants
const (
	LandmarkLabel = "Erbil Citadel"
	LandmarkIcon  = "info-sign"

	LandUseFillOpacity    = 0.2
	VegetationFillOpacity = 0.3
	VegetationColor       = "darkgreen"

	JitterDegrees = 0.003

	ClimateSamples      = 20
	ClimateMinIntensity = 25.0
	ClimateMaxIntensity = 35.0

	DensitySamples      = 30
	DensityMinIntensity = 0.2
	DensityMaxIntensity = 1.0
	DensityMinOpacity   = 0.3
)

// DensityGradient returns the fixed population density color ramp
func DensityGradient() []domain.GradientStop {
	return []domain.GradientStop{
		{Stop: 0.2, Color: "blue"},
		{Stop: 0.5, Color: "lime"},
		{Stop: 0.8, Color: "red"},
	}
}

// Compose builds the ordered primitive sequence for a selection.
// The selection is normalized first; the result depends only on its inputs.
func Compose(sel domain.LayerSelection, cat catalog.Catalog, rng RandomSource) []domain.Primitive {
	sel = sel.Normalize()
	landmark := domain.Landmark()

	prims := []domain.Primitive{
		domain.Marker{At: landmark, Label: LandmarkLabel, IconTag: LandmarkIcon},
	}

	if sel.ShowLandUse {
		for _, area := range cat.LandUse {
			if !sel.Includes(area.Category) {
				continue
			}
			prims = append(prims, domain.Circle{
				Center:       area.Center,
				RadiusMeters: area.RadiusMeters,
				Label:        area.Category.Label() + " Area",
				ColorTag:     area.ColorTag,
				FillOpacity:  LandUseFillOpacity,
			})
		}
	}

	if sel.ShowClimate {
		prims = append(prims, domain.HeatCloud{
			Samples: jitterSamples(rng, landmark, ClimateSamples, ClimateMinIntensity, ClimateMaxIntensity),
		})
	}

	if sel.ShowVegetation {
		for _, patch := range cat.Vegetation {
			prims = append(prims, domain.Circle{
				Center:       patch.Center,
				RadiusMeters: patch.SizeMeters,
				Label:        vegetationLabel(patch),
				ColorTag:     VegetationColor,
				FillOpacity:  VegetationFillOpacity,
			})
		}
	}

	if sel.ShowRoads {
		for _, road := range cat.Roads {
			path := make([]domain.Coordinate, len(road.Path))
			copy(path, road.Path)
			prims = append(prims, domain.Polyline{
				Path:     path,
				ColorTag: road.ColorTag,
				Weight:   road.Weight,
				Label:    road.Name,
			})
		}
	}

	if sel.ShowDensity {
		minOpacity := DensityMinOpacity
		prims = append(prims, domain.HeatCloud{
			Samples:    jitterSamples(rng, landmark, DensitySamples, DensityMinIntensity, DensityMaxIntensity),
			Gradient:   DensityGradient(),
			MinOpacity: &minOpacity,
		})
	}

	return prims
}

// jitterSamples scatters n samples around origin.
// Each sample draws lat offset, lon offset, then intensity.
func jitterSamples(rng RandomSource, origin domain.Coordinate, n int, lo, hi float64) []domain.HeatSample {
	samples := make([]domain.HeatSample, 0, n)
	for i := 0; i < n; i++ {
		latOffset := utils.Uniform(rng.Float64(), -JitterDegrees, JitterDegrees)
		lonOffset := utils.Uniform(rng.Float64(), -JitterDegrees, JitterDegrees)
		samples = append(samples, domain.HeatSample{
			Center: domain.Coordinate{
				Lat: origin.Lat + latOffset,
				Lon: origin.Lon + lonOffset,
			},
			Intensity: utils.Uniform(rng.Float64(), lo, hi),
		})
	}
	return samples
}

func vegetationLabel(p domain.VegetationPatch) string {
	if p.Name == "" {
		return fmt.Sprintf("Vegetation: %s", p.Density)
	}
	return fmt.Sprintf("%s (Vegetation: %s)", p.Name, p.Density)
}

// Summarize produces the text that accompanies a render.
// This is the only consumer of Year.
func Summarize(sel domain.LayerSelection, cat catalog.Catalog) domain.Summary {
	sel = sel.Normalize()
	s := domain.Summary{
		Year:              sel.Year,
		ActiveLayers:      sel.ActiveLayers(),
		LandUseCategories: sel.LandUseCategories,
	}

	s.Lines = append(s.Lines, fmt.Sprintf("Urban analysis for %d", sel.Year))

	if sel.ShowLandUse {
		for _, area := range cat.LandUse {
			if sel.Includes(area.Category) {
				s.LandUseAreas++
			}
		}
		labels := make([]string, 0, len(sel.LandUseCategories))
		for _, c := range sel.LandUseCategories {
			labels = append(labels, c.Label())
		}
		if len(labels) == 0 {
			s.Lines = append(s.Lines, "Land use: no categories selected")
		} else {
			s.Lines = append(s.Lines, fmt.Sprintf("Land use: %s (%d areas)", strings.Join(labels, ", "), s.LandUseAreas))
		}
	}
	if sel.ShowClimate {
		s.Lines = append(s.Lines, fmt.Sprintf("Climate: surface temperature %.0f-%.0f °C", ClimateMinIntensity, ClimateMaxIntensity))
	}
	if sel.ShowVegetation {
		s.VegetationPatches = len(cat.Vegetation)
		s.Lines = append(s.Lines, fmt.Sprintf("Vegetation: %d patches", s.VegetationPatches))
	}
	if sel.ShowRoads {
		s.RoadSegments = len(cat.Roads)
		var km float64
		for _, road := range cat.Roads {
			km += pathLengthKm(road.Path)
		}
		s.RoadLengthKm = utils.RoundTo(km, 2)
		s.Lines = append(s.Lines, fmt.Sprintf("Roads: %d segments, %.2f km", s.RoadSegments, s.RoadLengthKm))
	}
	if sel.ShowDensity {
		s.Lines = append(s.Lines, "Population density: relative weight 0.2-1.0")
	}

	return s
}

func pathLengthKm(path []domain.Coordinate) float64 {
	var km float64
	for i := 1; i < len(path); i++ {
		km += utils.Haversine(path[i-1].Lat, path[i-1].Lon, path[i].Lat, path[i].Lon)
	}
	return km
}
