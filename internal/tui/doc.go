// Package tui is a small immediate-mode text UI renderer.
//
// Widgets render into a Buffer each frame. A Terminal keeps the previous
// frame and sends only the changed cells to a Backend, which owns the actual
// output surface.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│   Application render callback           │
//	├─────────────────────────────────────────┤
//	│   Frame │ Layout │ Widgets              │
//	├─────────────────────────────────────────┤
//	│   Terminal (double buffer, diff)        │
//	├─────────────────────────────────────────┤
//	│   Backend (draw, cursor, size, flush)   │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := tui.NewTerminal(backend)
//	term.Draw(func(f *tui.Frame) {
//		f.RenderWidget(tui.NewParagraph("Hello world"), f.Area())
//	})
package tui
