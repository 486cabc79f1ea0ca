package domain

import "github.com/smartcity/erbil-dashboard/pkg/utils"

// Year slider bounds
const (
	MinYear = 2015
	MaxYear = 2024
)

// LayerSelection is the UI state for a single render
type LayerSelection struct {
	ShowLandUse    bool `json:"show_land_use"`
	ShowClimate    bool `json:"show_climate"`
	ShowVegetation bool `json:"show_vegetation"`
	ShowRoads      bool `json:"show_roads"`
	ShowDensity    bool `json:"show_density"`

	LandUseCategories []LandUseCategory `json:"land_use_categories"`
	Year              int               `json:"year"`
}

// Normalize clamps the year and drops unknown or repeated categories.
// Category order is preserved.
func (s LayerSelection) Normalize() LayerSelection {
	out := s
	out.Year = int(utils.Clamp(float64(s.Year), MinYear, MaxYear))

	seen := make(map[LandUseCategory]bool, len(s.LandUseCategories))
	out.LandUseCategories = make([]LandUseCategory, 0, len(s.LandUseCategories))
	for _, raw := range s.LandUseCategories {
		c, ok := ParseLandUseCategory(string(raw))
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		out.LandUseCategories = append(out.LandUseCategories, c)
	}
	return out
}

// Includes reports whether category c is selected
func (s LayerSelection) Includes(c LandUseCategory) bool {
	for _, sc := range s.LandUseCategories {
		if sc == c {
			return true
		}
	}
	return false
}

// ActiveLayers returns the names of enabled overlays in draw order
func (s LayerSelection) ActiveLayers() []string {
	layers := make([]string, 0, 5)
	if s.ShowLandUse {
		layers = append(layers, "land_use")
	}
	if s.ShowClimate {
		layers = append(layers, "climate")
	}
	if s.ShowVegetation {
		layers = append(layers, "vegetation")
	}
	if s.ShowRoads {
		layers = append(layers, "roads")
	}
	if s.ShowDensity {
		layers = append(layers, "density")
	}
	return layers
}
