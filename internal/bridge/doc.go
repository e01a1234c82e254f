// Package bridge lets a tui.Terminal draw onto a host console.
//
// Two backends are provided. DirectBackend writes cells straight into the
// host context of the current frame; it is checked out from a long-lived
// BackendManager each frame and must be released before the frame ends:
//
//	manager := bridge.NewBackendManager(bridge.DefaultColourConverter())
//
//	func (s *state) Tick(t *host.Term) {
//		s.manager.Frame(t, func(b *bridge.DirectBackend) error {
//			term, err := tui.NewTerminal(b)
//			if err != nil {
//				return err
//			}
//			_, err = term.Draw(render)
//			return err
//		})
//	}
//
// BatchBackend records into a pooled host.DrawBatch instead and holds no
// host reference between frames, so one tui.Terminal can be kept for the
// whole run. The caller refreshes its size with Update and submits the
// batch after drawing:
//
//	term.Backend().Update(t)
//	term.Draw(render)
//	term.Backend().Batch().Submit(t.Queue(), 0)
//	t.RenderDrawBuffer()
//
// Colours are translated by a ColourConverter. BasicColourConverter is the
// default policy; LuaColourConverter lets a script decide.
package bridge
