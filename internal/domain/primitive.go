package domain

import "encoding/json"

// PrimitiveKind names the drawable shape of a primitive
type PrimitiveKind string

const (
	KindMarker    PrimitiveKind = "marker"
	KindCircle    PrimitiveKind = "circle"
	KindPolyline  PrimitiveKind = "polyline"
	KindHeatCloud PrimitiveKind = "heat_cloud"
)

// Primitive is an atomic drawable handed to the rendering surface
type Primitive interface {
	Kind() PrimitiveKind
}

// Marker is a pinned icon at a single coordinate
type Marker struct {
	At      Coordinate `json:"at"`
	Label   string     `json:"label"`
	IconTag string     `json:"icon"`
}

// Circle is a filled circle with a radius in meters
type Circle struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_m"`
	Label        string     `json:"label"`
	ColorTag     string     `json:"color"`
	FillOpacity  float64    `json:"fill_opacity"`
}

// Polyline is a stroked path
type Polyline struct {
	Path     []Coordinate `json:"path"`
	ColorTag string       `json:"color"`
	Weight   float64      `json:"weight"`
	Label    string       `json:"label"`
}

// GradientStop maps a normalized intensity to a color
type GradientStop struct {
	Stop  float64 `json:"stop"`
	Color string  `json:"color"`
}

// HeatCloud is a set of weighted samples rendered as an intensity overlay.
// Gradient is ordered by ascending stop; nil means the renderer default.
type HeatCloud struct {
	Samples    []HeatSample   `json:"samples"`
	Gradient   []GradientStop `json:"gradient,omitempty"`
	MinOpacity *float64       `json:"min_opacity,omitempty"`
}

func (Marker) Kind() PrimitiveKind    { return KindMarker }
func (Circle) Kind() PrimitiveKind    { return KindCircle }
func (Polyline) Kind() PrimitiveKind  { return KindPolyline }
func (HeatCloud) Kind() PrimitiveKind { return KindHeatCloud }

// MarshalJSON adds the kind discriminator
func (m Marker) MarshalJSON() ([]byte, error) {
	type alias Marker
	return json.Marshal(struct {
		Kind PrimitiveKind `json:"kind"`
		alias
	}{KindMarker, alias(m)})
}

// MarshalJSON adds the kind discriminator
func (c Circle) MarshalJSON() ([]byte, error) {
	type alias Circle
	return json.Marshal(struct {
		Kind PrimitiveKind `json:"kind"`
		alias
	}{KindCircle, alias(c)})
}

// MarshalJSON adds the kind discriminator
func (p Polyline) MarshalJSON() ([]byte, error) {
	type alias Polyline
	return json.Marshal(struct {
		Kind PrimitiveKind `json:"kind"`
		alias
	}{KindPolyline, alias(p)})
}

// MarshalJSON adds the kind discriminator
func (h HeatCloud) MarshalJSON() ([]byte, error) {
	type alias HeatCloud
	return json.Marshal(struct {
		Kind PrimitiveKind `json:"kind"`
		alias
	}{KindHeatCloud, alias(h)})
}
