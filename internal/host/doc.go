// Package host is a cell-grid display environment in the style of the
// classic roguelike terminals.
//
// A Console is a fixed grid of glyphs, each with its own foreground and
// background colour. Applications implement GameState; a driver owns the
// event loop and calls Tick once per frame with a Term, which is both the
// frame's Context and the entry point to the render Queue.
//
// Glyphs are uint32 code points. Values below 256 are CP437 indices and
// everything else is Unicode.
//
// Drawing happens either directly through the Context, or off-screen into a
// DrawBatch that is submitted to the Queue at a depth and replayed by
// Term.RenderDrawBuffer:
//
//	batch := host.AcquireBatch(host.DefaultBatchCapacity)
//	defer host.ReleaseBatch(batch)
//	batch.Cls().Set(geom.NewPosition(1, 1), host.NewColorPair(host.White, host.Black), 'x')
//	batch.Submit(term.Queue(), 0)
//	term.RenderDrawBuffer()
package host
