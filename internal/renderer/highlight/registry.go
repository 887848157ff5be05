package highlight

import (
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// NoFiletype is the label used when nothing is known about a file.
const NoFiletype = "no ft"

// Registry selects a grammar for a filename. Grammars are tried in
// registration order and the first match wins.
type Registry struct {
	grammars []*Grammar
}

// NewRegistry creates a registry holding the given grammars.
func NewRegistry(grammars ...*Grammar) *Registry {
	return &Registry{grammars: grammars}
}

// DefaultRegistry returns a registry with the built-in grammars.
func DefaultRegistry() *Registry {
	return NewRegistry(C(), Go(), Python())
}

// Register appends a grammar.
func (r *Registry) Register(g *Grammar) {
	r.grammars = append(r.grammars, g)
}

// Select returns the grammar for filename, or nil when none applies.
func (r *Registry) Select(filename string) *Grammar {
	if filename == "" {
		return nil
	}
	for _, g := range r.grammars {
		if g.Matches(filename) {
			return g
		}
	}
	return nil
}

// Filetypes returns the filetype names of the registered grammars.
func (r *Registry) Filetypes() []string {
	names := make([]string, 0, len(r.grammars))
	for _, g := range r.grammars {
		names = append(names, g.Filetype)
	}
	return names
}

// Label returns the filetype shown for filename. The grammar's own name
// wins; otherwise the language is guessed from the name alone so that
// files without a grammar still get a useful label. An extension shared by
// several languages is only labelled when the full filename settles it.
func Label(filename string, g *Grammar) string {
	if g != nil {
		return g.Filetype
	}
	if filename == "" {
		return NoFiletype
	}
	if lang, safe := enry.GetLanguageByExtension(filename); safe {
		return strings.ToLower(lang)
	}
	byName := enry.GetLanguagesByFilename(filename, nil, nil)
	if candidates := enry.GetLanguagesByExtension(filename, nil, nil); len(candidates) > 0 {
		byName = intersect(candidates, byName)
	}
	if len(byName) == 1 {
		return strings.ToLower(byName[0])
	}
	return NoFiletype
}

func intersect(a, b []string) []string {
	var out []string
	for _, s := range a {
		if slices.Contains(b, s) {
			out = append(out, s)
		}
	}
	return out
}
