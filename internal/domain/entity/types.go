package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Field is the rectangular playfield every entity lives in
type Field struct {
	Width           float64
	Height          float64
	SideMargin      float64 // Inset formation anchors may not cross
	OutOfPlayBuffer float64 // Distance past the edges before a free-roam actor re-enters
	CullMargin      float64 // Distance past the edges before projectiles/pickups are removed
}

// ClampCircle keeps a circle of radius r fully inside the field
func (f Field) ClampCircle(x, y, r float64) (float64, float64) {
	return clamp(x, r, f.Width-r), clamp(y, r, f.Height-r)
}

// Contains reports whether (x, y) lies within the field grown by margin on every side
func (f Field) Contains(x, y, margin float64) bool {
	return x >= -margin && x <= f.Width+margin && y >= -margin && y <= f.Height+margin
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// tickDown decrements a duration counter, never below zero
func tickDown(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
