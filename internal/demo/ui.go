// Package demo contains the example application drawn by the cellbridge
// command: a greeting and a scrolling sparkline of random values, rendered
// once per host tick through either bridge backend.
package demo

import (
	"math/rand/v2"

	"github.com/dshills/cellbridge/internal/tui"
)

// MaxSamples is the number of values the sparkline keeps.
const MaxSamples = 50

// CP437 bar glyphs. Their code points are below 256, so the host reads them
// as CP437 indices: 219 is a full block and 220 a lower half block.
const (
	barFull  = "Û"
	barHalf  = "Ü"
	barEmpty = " "
)

// CP437Bars draws sparklines with whole and half blocks from the host font.
var CP437Bars = tui.BarSet{
	Full:          barFull,
	SevenEighths:  barFull,
	ThreeQuarters: barHalf,
	FiveEighths:   barHalf,
	Half:          barHalf,
	ThreeEighths:  barHalf,
	OneQuarter:    barHalf,
	OneEighth:     barEmpty,
	Empty:         barEmpty,
}

// Data is a rolling window of random samples.
type Data struct {
	values []uint64
	rng    *rand.Rand
}

// NewData creates an empty window whose samples are reproducible for seed.
func NewData(seed uint64) *Data {
	return &Data{
		values: make([]uint64, 0, MaxSamples+1),
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
}

// Update appends one sample in [0, 100) and drops the oldest beyond
// MaxSamples.
func (d *Data) Update() {
	d.values = append(d.values, d.rng.Uint64N(100))
	if over := len(d.values) - MaxSamples; over > 0 {
		d.values = append(d.values[:0], d.values[over:]...)
	}
}

// Values returns the current samples, oldest first.
func (d *Data) Values() []uint64 {
	return d.values
}

// Render draws the demo UI into f.
func Render(f *tui.Frame, data []uint64) {
	chunks := tui.NewLayout(tui.Vertical,
		tui.Length(3),
		tui.Length(3),
		tui.Length(7),
		tui.Min(0),
	).WithMargin(2).Split(f.Area())

	f.RenderWidget(tui.NewParagraph("Hello world"), chunks[0])

	sparkline := tui.NewSparkline(data)
	sparkline.Block = tui.NewBlock().WithTitle("Data")
	sparkline.Style = tui.NewStyle().Fg(tui.ColorYellow)
	sparkline.BarSet = CP437Bars
	f.RenderWidget(sparkline, chunks[1])
}
