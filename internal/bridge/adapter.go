package bridge

import (
	"github.com/dshills/cellbridge/internal/host"
	"github.com/dshills/cellbridge/internal/tui"
)

// cellWriter receives converted cells from drawCells.
type cellWriter func(x, y int, colors host.ColorPair, glyph uint32)

// drawCells converts every non-skip update and hands it to write.
// Both backends share this loop and differ only in where cells go.
func drawCells(colours ColourConverter, updates []tui.CellUpdate, write cellWriter) {
	for _, u := range updates {
		if u.Cell.Skip {
			continue
		}
		colors := host.NewColorPair(
			colours.ConvertFg(u.Cell.Fg, u.Cell.Modifier),
			colours.ConvertBg(u.Cell.Bg, u.Cell.Modifier),
		)
		write(u.X, u.Y, colors, glyphOf(u.Cell.Symbol))
	}
}

// glyphOf returns the first code point of symbol. An empty symbol is a
// caller defect.
func glyphOf(symbol string) uint32 {
	for _, r := range symbol {
		return uint32(r)
	}
	panic("bridge: cell with empty symbol")
}
