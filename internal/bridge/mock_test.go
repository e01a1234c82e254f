package bridge

import (
	"github.com/dshills/cellbridge/internal/host"
)

type setCall struct {
	x, y   int
	fg, bg host.RGBA
	glyph  uint32
}

// recordingContext is a host.Context that records every call.
type recordingContext struct {
	width, height  int
	pixelW, pixelH int
	sets           []setCall
	clears         int
	charSizeCalls  int
	pixelSizeCalls int
}

func newRecordingContext(width, height int) *recordingContext {
	return &recordingContext{width: width, height: height, pixelW: width * 8, pixelH: height * 16}
}

func (r *recordingContext) Set(x, y int, fg, bg host.RGBA, glyph uint32) {
	r.sets = append(r.sets, setCall{x: x, y: y, fg: fg, bg: bg, glyph: glyph})
}

func (r *recordingContext) Cls() { r.clears++ }

func (r *recordingContext) CharSize() (int, int) {
	r.charSizeCalls++
	return r.width, r.height
}

func (r *recordingContext) PixelSize() (int, int) {
	r.pixelSizeCalls++
	return r.pixelW, r.pixelH
}
