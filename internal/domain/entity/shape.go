package entity

// ShapeKind tags the geometry carried by a Shape
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a collision volume centered on (X, Y).
// Circles use R, rectangles use W and H.
type Shape struct {
	Kind ShapeKind
	X, Y float64
	R    float64
	W, H float64
}

// Circle creates a circular shape
func Circle(x, y, r float64) Shape {
	return Shape{Kind: ShapeCircle, X: x, Y: y, R: r}
}

// Rect creates a rectangle centered on (x, y)
func Rect(x, y, w, h float64) Shape {
	return Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h}
}

// Bounds returns the axis-aligned bounding box as (minX, minY, width, height)
func (s Shape) Bounds() (x, y, w, h float64) {
	if s.Kind == ShapeCircle {
		return s.X - s.R, s.Y - s.R, s.R * 2, s.R * 2
	}
	return s.X - s.W/2, s.Y - s.H/2, s.W, s.H
}

// Overlaps tests two shapes for intersection, treating them as touching
// when they are within tolerance of each other.
func Overlaps(a, b Shape, tolerance float64) bool {
	switch {
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		dx, dy := a.X-b.X, a.Y-b.Y
		r := a.R + b.R + tolerance
		return dx*dx+dy*dy < r*r
	case a.Kind == ShapeCircle:
		return circleRect(a, b, tolerance)
	case b.Kind == ShapeCircle:
		return circleRect(b, a, tolerance)
	default:
		return abs(a.X-b.X) < (a.W+b.W)/2+tolerance && abs(a.Y-b.Y) < (a.H+b.H)/2+tolerance
	}
}

func circleRect(c, r Shape, tolerance float64) bool {
	// Closest point on the rectangle to the circle center
	nx := clamp(c.X, r.X-r.W/2, r.X+r.W/2)
	ny := clamp(c.Y, r.Y-r.H/2, r.Y+r.H/2)
	dx, dy := c.X-nx, c.Y-ny
	rad := c.R + tolerance
	return dx*dx+dy*dy < rad*rad
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
