package system

// Intent represents a player command consumed by the simulation
type Intent interface {
	isIntent()
}

// MoveToIntent moves the player toward an absolute position (mouse/drag)
type MoveToIntent struct {
	X, Y float64
}

func (MoveToIntent) isIntent() {}

// MoveByIntent moves the player along a direction, components in [-1, 1]
type MoveByIntent struct {
	DX, DY float64
}

func (MoveByIntent) isIntent() {}

// FireIntent requests a normal shot
type FireIntent struct{}

func (FireIntent) isIntent() {}

// UltimateIntent requests ultimate activation
type UltimateIntent struct{}

func (UltimateIntent) isIntent() {}
