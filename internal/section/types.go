package section

import "fmt"

// Section represents a member cross-section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward (bending about the horizontal axis)
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Section outline (simple polygon, no holes)
	// Vertices may be listed in either direction
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // Maximum width
	Height float64 // Total height
	Area   float64 // Gross area

	// Centroid location
	CentroidX float64
	CentroidY float64

	// Second moments of area about centroidal axes
	Ixx float64 // about the horizontal axis (in-plane frame bending)
	Iyy float64 // about the vertical axis

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Inertia returns the second moment of area used for in-plane bending
func (p Properties) Inertia() float64 {
	return p.Ixx
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	area, _, _ := s.calculateAreaAndCentroid()
	if area <= 0 {
		return &ValidationError{"section vertices enclose no area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Rectangular returns the properties of a solid b x d rectangle with its
// lower-left corner at the origin.
func Rectangular(width, depth float64) (Properties, error) {
	if !(width > 0) {
		return Properties{}, &ValidationError{msg: fmt.Sprintf("width must be positive; got %g", width)}
	}
	if !(depth > 0) {
		return Properties{}, &ValidationError{msg: fmt.Sprintf("depth must be positive; got %g", depth)}
	}
	return Properties{
		Width:     width,
		Height:    depth,
		Area:      width * depth,
		CentroidX: width / 2,
		CentroidY: depth / 2,
		Ixx:       width * depth * depth * depth / 12,
		Iyy:       depth * width * width * width / 12,
		MaxX:      width,
		MaxY:      depth,
	}, nil
}

// RectangleSection builds the polygon of a b x d rectangle
func RectangleSection(name string, width, depth float64) *Section {
	return &Section{
		Name: name,
		Vertices: []Point{
			{X: 0, Y: 0},
			{X: width, Y: 0},
			{X: width, Y: depth},
			{X: 0, Y: depth},
		},
	}
}
