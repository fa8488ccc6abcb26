// Package camera maps world units (y up) to screen pixels (y down).
package camera

// Camera controls the viewport into the game world.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Screen pixels per world unit at zoom 1
	PixelsPerUnit float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world origin with 1:1 zoom.
func New(viewportW, viewportH, pixelsPerUnit float32) *Camera {
	return &Camera{
		PixelsPerUnit: pixelsPerUnit,
		Zoom:          1.0,
		ViewportW:     viewportW,
		ViewportH:     viewportH,
		MinZoom:       0.25,
		MaxZoom:       4.0,
	}
}

// scale returns screen pixels per world unit at the current zoom.
func (c *Camera) scale() float32 {
	return c.PixelsPerUnit * c.Zoom
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.scale()
	sx = c.ViewportW/2 + (wx-c.X)*s
	sy = c.ViewportH/2 - (wy-c.Y)*s
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.scale()
	wx = c.X + (sx-c.ViewportW/2)/s
	wy = c.Y - (sy-c.ViewportH/2)/s
	return wx, wy
}

// Length converts a world distance to pixels.
func (c *Camera) Length(world float32) float32 {
	return world * c.scale()
}

// IsVisible returns true if a circle at (wx, wy) with the given world radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	minX, minY, maxX, maxY := c.VisibleWorldBounds()
	return wx+radius >= minX && wx-radius <= maxX && wy+radius >= minY && wy-radius <= maxY
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	s := c.scale()
	c.X += dx / s
	c.Y -= dy / s
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Fit centers the camera on a world rectangle and zooms so it fills the viewport
// with the given pixel margin on each side.
func (c *Camera) Fit(minX, minY, maxX, maxY, margin float32) {
	c.X = (minX + maxX) / 2
	c.Y = (minY + maxY) / 2
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 || c.PixelsPerUnit <= 0 {
		return
	}
	zx := (c.ViewportW - 2*margin) / (w * c.PixelsPerUnit)
	zy := (c.ViewportH - 2*margin) / (h * c.PixelsPerUnit)
	z := zx
	if zy < z {
		z = zy
	}
	c.SetZoom(z)
}

// Reset returns the camera to the origin at zoom 1.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	s := c.scale()
	halfW := c.ViewportW / (2 * s)
	halfH := c.ViewportH / (2 * s)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
