package highlight

import (
	"sort"
	"strings"
	"sync"
)

// Flags select optional highlighting rules.
type Flags uint8

const (
	// HighlightNumbers colours digit runs that start a word.
	HighlightNumbers Flags = 1 << iota
	// HighlightStrings colours single and double quoted strings.
	HighlightStrings
)

// Grammar describes how to highlight one filetype.
type Grammar struct {
	// Filetype is the name shown in the status bar.
	Filetype string

	// Filematch lists filename patterns. An entry starting with '.' must
	// equal the file's extension; any other entry matches as a substring.
	Filematch []string

	// Keywords lists primary keywords. A trailing '|' marks a secondary
	// keyword (usually a type name).
	Keywords []string

	LineComment string
	BlockStart  string
	BlockEnd    string

	Flags Flags

	once  sync.Once
	table []keyword
}

type keyword struct {
	text  []byte
	class Class
}

// keywordTable returns the keywords with their classes, longest first, so
// that a keyword never shadows a longer one sharing its prefix.
func (g *Grammar) keywordTable() []keyword {
	g.once.Do(func() {
		table := make([]keyword, 0, len(g.Keywords))
		for _, kw := range g.Keywords {
			class := Keyword1
			if strings.HasSuffix(kw, "|") {
				kw = kw[:len(kw)-1]
				class = Keyword2
			}
			if kw == "" {
				continue
			}
			table = append(table, keyword{text: []byte(kw), class: class})
		}
		sort.SliceStable(table, func(i, j int) bool {
			return len(table[i].text) > len(table[j].text)
		})
		g.table = table
	})
	return g.table
}

// Matches reports whether the grammar applies to filename.
func (g *Grammar) Matches(filename string) bool {
	ext := ""
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		ext = filename[i:]
	}
	for _, pattern := range g.Filematch {
		if pattern == "" {
			continue
		}
		if pattern[0] == '.' {
			if ext == pattern {
				return true
			}
			continue
		}
		if strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

// C returns the grammar for C and C++ sources.
func C() *Grammar {
	return &Grammar{
		Filetype:  "c",
		Filematch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}

// Go returns the grammar for Go sources.
func Go() *Grammar {
	return &Grammar{
		Filetype:  "go",
		Filematch: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select", "struct",
			"switch", "type", "var",
			"bool|", "byte|", "complex64|", "complex128|", "error|", "float32|",
			"float64|", "int|", "int8|", "int16|", "int32|", "int64|", "rune|",
			"string|", "uint|", "uint8|", "uint16|", "uint32|", "uint64|",
			"uintptr|", "any|", "true|", "false|", "nil|", "iota|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}

// Python returns the grammar for Python sources.
func Python() *Grammar {
	return &Grammar{
		Filetype:  "python",
		Filematch: []string{".py", ".pyw", ".pyi"},
		Keywords: []string{
			"and", "as", "assert", "async", "await", "break", "class", "continue",
			"def", "del", "elif", "else", "except", "finally", "for", "from",
			"global", "if", "import", "in", "is", "lambda", "nonlocal", "not",
			"or", "pass", "raise", "return", "try", "while", "with", "yield",
			"True|", "False|", "None|", "int|", "float|", "str|", "bytes|",
			"list|", "dict|", "set|", "tuple|", "bool|", "self|",
		},
		LineComment: "#",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}
