// Package renderer turns the document into a frame of drawing instructions.
//
// The renderer is responsible for:
//   - picking the visible slice of each rendered line
//   - emitting colour changes only where the highlight class changes
//   - showing control characters as inverse-video glyphs
//   - filling rows past the end of the document with '~'
//   - placing the welcome banner on an empty document
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│     Compositor (buffer → Frame)         │
//	├─────────────────────────────────────────┤
//	│  Viewport │ Highlight │ StatusLine      │
//	├─────────────────────────────────────────┤
//	│           Backend (Frame → screen)      │
//	├─────────────────────────────────────────┤
//	│  ANSI writer │ Terminal (tcell)         │
//	└─────────────────────────────────────────┘
//
// Compose is a pure function of its inputs. Turning instructions into bytes
// or screen cells is left to a backend, which also decides what colour a
// class maps to.
//
// Usage:
//
//	c := renderer.NewCompositor("0.0.1")
//	frame := c.Compose(buf, vp, cursor)
//	frame.Status = statusline.Status(info, vp.Width())
//	err := sink.Draw(frame)
package renderer
