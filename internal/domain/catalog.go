package domain

import "strings"

// LandUseCategory classifies a land-use area
type LandUseCategory string

const (
	Commercial  LandUseCategory = "Commercial"
	Residential LandUseCategory = "Residential"
	Industrial  LandUseCategory = "Industrial"
	GreenSpace  LandUseCategory = "GreenSpace"
)

// LandUseCategories lists every known category in display order
var LandUseCategories = []LandUseCategory{Commercial, Residential, Industrial, GreenSpace}

// ParseLandUseCategory matches a tag case-insensitively.
// "Green Space" and "green-space" are accepted for GreenSpace.
func ParseLandUseCategory(tag string) (LandUseCategory, bool) {
	norm := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(tag))
	for _, c := range LandUseCategories {
		if strings.EqualFold(norm, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Label returns the human-readable category name
func (c LandUseCategory) Label() string {
	if c == GreenSpace {
		return "Green Space"
	}
	return string(c)
}

// VegetationDensity describes how thick a vegetation patch is
type VegetationDensity string

const (
	Dense    VegetationDensity = "Dense"
	Moderate VegetationDensity = "Moderate"
	Sparse   VegetationDensity = "Sparse"
)

// Valid reports whether d is a known density
func (d VegetationDensity) Valid() bool {
	switch d {
	case Dense, Moderate, Sparse:
		return true
	}
	return false
}

// RoadClass distinguishes main roads from secondary ones
type RoadClass string

const (
	MainRoad      RoadClass = "Main"
	SecondaryRoad RoadClass = "Secondary"
)

// Valid reports whether r is a known road class
func (r RoadClass) Valid() bool {
	return r == MainRoad || r == SecondaryRoad
}

// LandUseArea is a circular zone of a single land-use category
type LandUseArea struct {
	Category     LandUseCategory `json:"category"`
	Center       Coordinate      `json:"center"`
	RadiusMeters float64         `json:"radius_m"`
	ColorTag     string          `json:"color"`
}

// VegetationPatch is a circular patch of vegetation
type VegetationPatch struct {
	Name       string            `json:"name"`
	Center     Coordinate        `json:"center"`
	SizeMeters float64           `json:"size_m"`
	Density    VegetationDensity `json:"density"`
}

// RoadSegment is a drawn road path. Color and weight are per-record.
type RoadSegment struct {
	Name     string       `json:"name"`
	Path     []Coordinate `json:"path"`
	Class    RoadClass    `json:"class"`
	ColorTag string       `json:"color"`
	Weight   float64      `json:"weight"`
}

// HeatSample is a single weighted point of a heat cloud
type HeatSample struct {
	Center    Coordinate `json:"center"`
	Intensity float64    `json:"intensity"`
}
