package highlight

import "bytes"

const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c ends a word. Whitespace, NUL and the
// punctuation in ",.()+-/*=~%<>[];" are separators.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return bytes.IndexByte([]byte(separators), c) >= 0
}

// separatorAt treats the end of the line as a separator.
func separatorAt(render []byte, i int) bool {
	return i >= len(render) || IsSeparator(render[i])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Scan classifies render into hl, which must have the same length.
// openIn is true when the previous line ended inside a block comment.
// The return value is true when this line ends inside one.
//
// A nil grammar leaves every byte Normal and never opens a comment.
func Scan(g *Grammar, render []byte, openIn bool, hl []Class) bool {
	fill(hl, Normal)
	if g == nil {
		return false
	}

	keywords := g.keywordTable()
	lineComment := []byte(g.LineComment)
	blockStart := []byte(g.BlockStart)
	blockEnd := []byte(g.BlockEnd)
	blocks := len(blockStart) > 0 && len(blockEnd) > 0

	prevSep := true
	inComment := openIn
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prev := Normal
		if i > 0 {
			prev = hl[i-1]
		}

		if len(lineComment) > 0 && inString == 0 && !inComment &&
			bytes.HasPrefix(render[i:], lineComment) {
			fill(hl[i:], LineComment)
			break
		}

		if blocks && inString == 0 {
			if inComment {
				if bytes.HasPrefix(render[i:], blockEnd) {
					fill(hl[i:i+len(blockEnd)], BlockComment)
					i += len(blockEnd)
					inComment = false
					prevSep = true
					continue
				}
				hl[i] = BlockComment
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], blockStart) {
				fill(hl[i:i+len(blockStart)], BlockComment)
				i += len(blockStart)
				inComment = true
				continue
			}
		}

		if g.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if g.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prev == Number)) || (c == '.' && prev == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, ok := matchKeyword(keywords, render, i); ok {
				fill(hl[i:i+len(kw.text)], kw.class)
				i += len(kw.text)
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return inComment
}

func matchKeyword(keywords []keyword, render []byte, i int) (keyword, bool) {
	for _, kw := range keywords {
		if bytes.HasPrefix(render[i:], kw.text) && separatorAt(render, i+len(kw.text)) {
			return kw, true
		}
	}
	return keyword{}, false
}
