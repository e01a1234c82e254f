package tui

import (
	"strings"

	"github.com/dshills/cellbridge/internal/geom"
)

// Widget renders itself into a buffer region.
type Widget interface {
	Render(area geom.Rect, buf *Buffer)
}

// Block draws an optional border and title around other widgets.
type Block struct {
	Title       string
	Borders     bool
	Style       Style
	BorderStyle Style
	TitleStyle  Style
}

// NewBlock creates a borderless, untitled block.
func NewBlock() *Block {
	return &Block{}
}

// WithTitle sets the title.
func (b *Block) WithTitle(title string) *Block {
	b.Title = title
	return b
}

// WithBorders enables the border.
func (b *Block) WithBorders() *Block {
	b.Borders = true
	return b
}

// Inner returns the area left for content inside the block.
func (b *Block) Inner(area geom.Rect) geom.Rect {
	if b.Borders {
		return area.Inner(1)
	}
	if b.Title != "" && area.Height > 0 {
		return geom.NewRect(area.X, area.Y+1, area.Width, area.Height-1)
	}
	return area
}

func (b *Block) Render(area geom.Rect, buf *Buffer) {
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, b.Style)

	if b.Borders && area.Width >= 2 && area.Height >= 2 {
		right, bottom := area.Right()-1, area.Bottom()-1
		for x := area.Left() + 1; x < right; x++ {
			buf.SetString(x, area.Top(), "─", b.BorderStyle)
			buf.SetString(x, bottom, "─", b.BorderStyle)
		}
		for y := area.Top() + 1; y < bottom; y++ {
			buf.SetString(area.Left(), y, "│", b.BorderStyle)
			buf.SetString(right, y, "│", b.BorderStyle)
		}
		buf.SetString(area.Left(), area.Top(), "┌", b.BorderStyle)
		buf.SetString(right, area.Top(), "┐", b.BorderStyle)
		buf.SetString(area.Left(), bottom, "└", b.BorderStyle)
		buf.SetString(right, bottom, "┘", b.BorderStyle)
	}

	if b.Title != "" {
		x, width := area.Left(), area.Width
		if b.Borders {
			x, width = x+1, width-2
		}
		buf.SetStringN(x, area.Top(), b.Title, width, b.TitleStyle)
	}
}

// Paragraph renders lines of text without wrapping.
type Paragraph struct {
	Text  string
	Style Style
	Block *Block
}

// NewParagraph creates a paragraph for text.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{Text: text}
}

func (p *Paragraph) Render(area geom.Rect, buf *Buffer) {
	if p.Block != nil {
		p.Block.Render(area, buf)
		area = p.Block.Inner(area)
	}
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, p.Style)
	for i, line := range strings.Split(p.Text, "\n") {
		if i >= area.Height {
			break
		}
		buf.SetStringN(area.X, area.Y+i, line, area.Width, p.Style)
	}
}

// BarSet holds the symbols a Sparkline uses for each eighth of a cell.
type BarSet struct {
	Full          string
	SevenEighths  string
	ThreeQuarters string
	FiveEighths   string
	Half          string
	ThreeEighths  string
	OneQuarter    string
	OneEighth     string
	Empty         string
}

// NineLevels is the default bar set using Unicode block elements.
var NineLevels = BarSet{
	Full:          "█",
	SevenEighths:  "▇",
	ThreeQuarters: "▆",
	FiveEighths:   "▅",
	Half:          "▄",
	ThreeEighths:  "▃",
	OneQuarter:    "▂",
	OneEighth:     "▁",
	Empty:         " ",
}

// ThreeLevels uses only full, half and empty cells.
var ThreeLevels = BarSet{
	Full:          "█",
	SevenEighths:  "█",
	ThreeQuarters: "▄",
	FiveEighths:   "▄",
	Half:          "▄",
	ThreeEighths:  "▄",
	OneQuarter:    "▄",
	OneEighth:     " ",
	Empty:         " ",
}

func (s BarSet) symbol(eighths uint64) string {
	switch eighths {
	case 0:
		return s.Empty
	case 1:
		return s.OneEighth
	case 2:
		return s.OneQuarter
	case 3:
		return s.ThreeEighths
	case 4:
		return s.Half
	case 5:
		return s.FiveEighths
	case 6:
		return s.ThreeQuarters
	case 7:
		return s.SevenEighths
	default:
		return s.Full
	}
}

// Sparkline renders one bar per data point, scaled to the area height.
type Sparkline struct {
	Data   []uint64
	Max    uint64 // Scale maximum; the data maximum when zero
	Style  Style
	BarSet BarSet
	Block  *Block
}

// NewSparkline creates a sparkline with the default bar set.
func NewSparkline(data []uint64) *Sparkline {
	return &Sparkline{Data: data, BarSet: NineLevels}
}

func (s *Sparkline) Render(area geom.Rect, buf *Buffer) {
	if s.Block != nil {
		s.Block.Render(area, buf)
		area = s.Block.Inner(area)
	}
	if area.IsEmpty() {
		return
	}

	maxValue := s.Max
	if maxValue == 0 {
		for _, v := range s.Data {
			maxValue = max(maxValue, v)
		}
	}

	n := min(len(s.Data), area.Width)
	heights := make([]uint64, n)
	for i := range n {
		if maxValue != 0 {
			heights[i] = min(s.Data[i], maxValue) * uint64(area.Height) * 8 / maxValue
		}
	}

	for j := area.Height - 1; j >= 0; j-- {
		for i, h := range heights {
			sym := s.BarSet.symbol(min(h, 8))
			buf.SetString(area.X+i, area.Y+j, sym, s.Style)
			heights[i] = h - min(h, 8)
		}
	}
}
