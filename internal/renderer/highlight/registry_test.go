package highlight

import "testing"

func TestRegistrySelect(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		filename string
		expected string
	}{
		{"main.c", "c"},
		{"kilo.h", "c"},
		{"widget.cpp", "c"},
		{"main.go", "go"},
		{"dir/tool.py", "python"},
		{"notes.txt", ""},
		{"Makefile", ""},
		{"", ""},
		{"c", ""},
	}

	for _, tt := range tests {
		g := r.Select(tt.filename)
		got := ""
		if g != nil {
			got = g.Filetype
		}
		if got != tt.expected {
			t.Errorf("Select(%q): expected %q, got %q", tt.filename, tt.expected, got)
		}
	}
}

func TestGrammarSubstringMatch(t *testing.T) {
	g := &Grammar{Filetype: "make", Filematch: []string{"Makefile"}}
	r := NewRegistry(g)
	if r.Select("src/Makefile") != g {
		t.Error("expected substring pattern to match")
	}
	if r.Select("main.c") != nil {
		t.Error("expected no match for main.c")
	}

	r.Register(C())
	if got := r.Filetypes(); len(got) != 2 || got[1] != "c" {
		t.Errorf("unexpected filetypes %v", got)
	}
}

func TestExtensionMatchIsExact(t *testing.T) {
	if C().Matches("archive.cc") {
		t.Error(".c must not match .cc")
	}
	if !C().Matches("archive.tar.c") {
		t.Error("expected last extension to be used")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		filename string
		grammar  *Grammar
		expected string
	}{
		{"main.c", C(), "c"},
		{"", nil, NoFiletype},
		{"main.go", nil, "go"},
		{"app.rb", nil, "ruby"},
		{"Makefile", nil, "makefile"},
		{"lib.rs", nil, NoFiletype},
		{"no-extension-here", nil, NoFiletype},
	}

	for _, tt := range tests {
		if got := Label(tt.filename, tt.grammar); got != tt.expected {
			t.Errorf("Label(%q): expected %q, got %q", tt.filename, tt.expected, got)
		}
	}
}
