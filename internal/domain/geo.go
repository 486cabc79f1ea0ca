package domain

import "fmt"

// Erbil Citadel coordinates, the dashboard landmark and map center
const (
	ErbilCitadelLat = 36.191111
	ErbilCitadelLon = 44.009167

	// DefaultZoom is the initial zoom level of the base map
	DefaultZoom = 15
)

// Coordinate is a latitude/longitude pair in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Landmark returns the fixed landmark coordinate
func Landmark() Coordinate {
	return Coordinate{Lat: ErbilCitadelLat, Lon: ErbilCitadelLon}
}

// Validate checks that the coordinate lies on the globe
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Lon)
	}
	return nil
}

// MapContext is the base map a rendering surface draws primitives onto
type MapContext struct {
	Center Coordinate `json:"center"`
	Zoom   int        `json:"zoom"`
}

// DefaultMapContext returns the map centered on the citadel
func DefaultMapContext() MapContext {
	return MapContext{Center: Landmark(), Zoom: DefaultZoom}
}
