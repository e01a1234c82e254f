package host

// Context is the drawing surface the host lends to an application for one
// frame.
type Context interface {
	// Set writes one cell. Coordinates outside the grid are ignored.
	Set(x, y int, fg, bg RGBA, glyph uint32)

	// Cls clears the whole grid.
	Cls()

	// CharSize returns the grid size in cells.
	CharSize() (width, height int)

	// PixelSize returns the window size in pixels.
	PixelSize() (width, height int)
}
