// Package style maps highlight classes to colours.
//
// The built-in "kilo" theme uses the eight ANSI palette colours. Any chroma
// style name (monokai, dracula, github, ...) can be used instead; its colours
// are taken as 24-bit values and may be reduced to the xterm 256-colour
// palette for terminals without true colour.
package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/kilo/internal/renderer/core"
	"github.com/dshills/kilo/internal/renderer/highlight"
)

// DefaultThemeName is the built-in ANSI theme.
const DefaultThemeName = "kilo"

// ErrUnknownTheme is returned for a theme name that is neither built in nor
// a chroma style.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme assigns a style to every highlight class.
type Theme struct {
	Name    string
	classes map[highlight.Class]core.Style
}

// NewTheme creates a theme where every class uses the default style.
func NewTheme(name string) *Theme {
	return &Theme{Name: name, classes: make(map[highlight.Class]core.Style)}
}

// Set assigns the style for a class.
func (t *Theme) Set(c highlight.Class, s core.Style) {
	t.classes[c] = s
}

// Style returns the style for a class.
func (t *Theme) Style(c highlight.Class) core.Style {
	if s, ok := t.classes[c]; ok {
		return s
	}
	return core.DefaultStyle()
}

// Color returns the foreground colour for a class.
func (t *Theme) Color(c highlight.Class) core.Color {
	return t.Style(c).Foreground
}

// Kilo returns the built-in theme.
func Kilo() *Theme {
	t := NewTheme(DefaultThemeName)
	t.Set(highlight.LineComment, core.NewStyle(core.ColorCyan))
	t.Set(highlight.BlockComment, core.NewStyle(core.ColorCyan))
	t.Set(highlight.Keyword1, core.NewStyle(core.ColorYellow))
	t.Set(highlight.Keyword2, core.NewStyle(core.ColorGreen))
	t.Set(highlight.String, core.NewStyle(core.ColorMagenta))
	t.Set(highlight.Number, core.NewStyle(core.ColorRed))
	t.Set(highlight.Match, core.NewStyle(core.ColorBlue))
	return t
}

// chromaTokens is the chroma token type each class borrows its colour from.
var chromaTokens = map[highlight.Class]chroma.TokenType{
	highlight.LineComment:  chroma.CommentSingle,
	highlight.BlockComment: chroma.CommentMultiline,
	highlight.Keyword1:     chroma.Keyword,
	highlight.Keyword2:     chroma.KeywordType,
	highlight.String:       chroma.LiteralString,
	highlight.Number:       chroma.LiteralNumber,
	highlight.Match:        chroma.GenericHeading,
}

// FromChroma builds a theme from the named chroma style.
// Classes the style leaves uncoloured fall back to the kilo colours.
func FromChroma(name string) (*Theme, error) {
	cs, ok := styles.Registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}

	fallback := Kilo()
	base := cs.Get(chroma.Text).Colour
	t := NewTheme(cs.Name)
	for class, token := range chromaTokens {
		entry := cs.Get(token)
		if !entry.Colour.IsSet() || entry.Colour == base {
			t.Set(class, fallback.Style(class))
			continue
		}
		s := core.NewStyle(core.ColorFromRGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
		if entry.Bold == chroma.Yes {
			s = s.Bold()
		}
		t.Set(class, s)
	}
	return t, nil
}

// Load returns the named theme. With trueColor false, 24-bit colours are
// reduced to the 256-colour palette.
func Load(name string, trueColor bool) (*Theme, error) {
	var t *Theme
	if name == "" || strings.EqualFold(name, DefaultThemeName) {
		t = Kilo()
	} else {
		var err error
		if t, err = FromChroma(name); err != nil {
			return nil, err
		}
	}
	if !trueColor {
		t = Downsample(t)
	}
	return t, nil
}

// Names returns the built-in theme followed by every chroma style name.
func Names() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{DefaultThemeName}, names...)
}
