package render

import "github.com/lixenwraith/combat-text/floating"

// Camera looks straight down on the spawn plane; X maps to columns, Z to rows
type Camera struct {
	Extent float32 // half-width of the visible square in world units
}

// Project maps a world position to a cell in a width x height area.
// Positions outside the extent land outside the area
func (c Camera) Project(pos floating.Vec3, width, height int) (x, y int) {
	if c.Extent <= 0 || width <= 0 || height <= 0 {
		return -1, -1
	}
	span := 2 * c.Extent
	fx := (pos.X + c.Extent) / span * float32(width-1)
	fy := (pos.Z + c.Extent) / span * float32(height-1)
	if fx < 0 {
		fx--
	}
	if fy < 0 {
		fy--
	}
	return int(fx), int(fy)
}
