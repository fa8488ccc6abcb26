package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents an entity's world position.
type Position struct {
	X, Y float64
}

// Vec returns the position as a gonum vector.
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Set copies a vector into the position.
func (p *Position) Set(v r2.Vec) {
	p.X, p.Y = v.X, v.Y
}

// Bounds is the rectangle an entity is kept inside.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Clamp moves p inside the bounds.
func (b Bounds) Clamp(p *Position) {
	if p.X > b.MaxX {
		p.X = b.MaxX
	} else if p.X < b.MinX {
		p.X = b.MinX
	}
	if p.Y > b.MaxY {
		p.Y = b.MaxY
	} else if p.Y < b.MinY {
		p.Y = b.MinY
	}
}

// Contains reports whether p lies inside the bounds (edges included).
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
