package buffer

import (
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/layout"
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabs = layout.NewTabExpander(width)
		}
	}
}

// WithGrammar sets the grammar used to highlight lines.
func WithGrammar(g *highlight.Grammar) Option {
	return func(b *Buffer) {
		b.grammar = g
	}
}
