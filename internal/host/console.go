package host

import (
	"strings"
)

// Tile is one console cell.
type Tile struct {
	Glyph uint32
	Fg    RGBA
	Bg    RGBA
}

// blankTile is what Cls fills the console with.
var blankTile = Tile{Glyph: ' ', Fg: White, Bg: Black}

// Console is an in-memory cell grid. It implements Context.
type Console struct {
	width      int
	height     int
	fontWidth  int
	fontHeight int
	tiles      []Tile
}

// NewConsole creates a cleared console of width x height cells drawn with a
// font of fontWidth x fontHeight pixels.
func NewConsole(width, height, fontWidth, fontHeight int) *Console {
	c := &Console{
		width:      max(width, 0),
		height:     max(height, 0),
		fontWidth:  max(fontWidth, 1),
		fontHeight: max(fontHeight, 1),
	}
	c.tiles = make([]Tile, c.width*c.height)
	c.Cls()
	return c
}

func (c *Console) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Console) Set(x, y int, fg, bg RGBA, glyph uint32) {
	if !c.inBounds(x, y) {
		return
	}
	c.tiles[y*c.width+x] = Tile{Glyph: glyph, Fg: fg, Bg: bg}
}

func (c *Console) Cls() {
	for i := range c.tiles {
		c.tiles[i] = blankTile
	}
}

// ClsColor clears the console to bg.
func (c *Console) ClsColor(bg RGBA) {
	for i := range c.tiles {
		c.tiles[i] = Tile{Glyph: ' ', Fg: White, Bg: bg}
	}
}

func (c *Console) CharSize() (int, int) {
	return c.width, c.height
}

func (c *Console) PixelSize() (int, int) {
	return c.width * c.fontWidth, c.height * c.fontHeight
}

// Tile returns the cell at (x, y).
func (c *Console) Tile(x, y int) (Tile, bool) {
	if !c.inBounds(x, y) {
		return Tile{}, false
	}
	return c.tiles[y*c.width+x], true
}

// Resize changes the grid size, keeping the overlapping region.
func (c *Console) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = blankTile
	}
	for y := range min(height, c.height) {
		copy(tiles[y*width:y*width+min(width, c.width)], c.tiles[y*c.width:])
	}
	c.width, c.height, c.tiles = width, height, tiles
}

// Text returns the console contents as one string per row.
func (c *Console) Text() []string {
	lines := make([]string, c.height)
	var sb strings.Builder
	for y := range c.height {
		sb.Reset()
		for x := range c.width {
			sb.WriteRune(GlyphRune(c.tiles[y*c.width+x].Glyph))
		}
		lines[y] = sb.String()
	}
	return lines
}
