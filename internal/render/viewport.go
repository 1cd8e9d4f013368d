package render

// Viewport is the visible window into the world: screen size in pixels
// plus a camera offset applied to every world-space draw.
type Viewport struct {
	Width, Height    int
	CameraX, CameraY int
}

// Scroll moves the camera by (dx, dy) pixels.
func (v *Viewport) Scroll(dx, dy int) {
	v.CameraX += dx
	v.CameraY += dy
}

// ToScreen converts a world-space pixel position to screen space.
func (v *Viewport) ToScreen(x, y int) (int, int) {
	return x - v.CameraX, y - v.CameraY
}

// Visible reports whether a w x h rectangle at world (x, y) intersects
// the screen. Used to skip off-screen instances.
func (v *Viewport) Visible(x, y, w, h int) bool {
	sx, sy := v.ToScreen(x, y)
	return sx+w > 0 && sy+h > 0 && sx < v.Width && sy < v.Height
}
