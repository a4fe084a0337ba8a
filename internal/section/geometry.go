package section

import "math"

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()

	// Second moments about the origin, shifted to the centroid
	ix, iy := s.calculateSecondMoments()
	props.Ixx = ix - props.Area*props.CentroidY*props.CentroidY
	props.Iyy = iy - props.Area*props.CentroidX*props.CentroidX

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// calculateSecondMoments returns Ix and Iy about the coordinate axes
// (Green's theorem over the polygon edges). The sign of the vertex order
// is removed so clockwise outlines give the same result.
func (s *Section) calculateSecondMoments() (ix, iy float64) {
	n := len(s.Vertices)
	var signedArea float64

	for i := 0; i < n; i++ {
		a, b := s.Vertices[i], s.Vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		signedArea += cross
		ix += cross * (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y)
		iy += cross * (a.X*a.X + a.X*b.X + b.X*b.X)
	}

	ix /= 12
	iy /= 12
	if signedArea < 0 {
		ix, iy = -ix, -iy
	}
	return ix, iy
}
