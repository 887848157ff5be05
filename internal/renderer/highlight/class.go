package highlight

// Class is the highlight classification of one rendered byte.
type Class uint8

// Highlight classes.
const (
	Normal Class = iota
	LineComment
	BlockComment
	Keyword1
	Keyword2
	String
	Number
	Match
)

var classNames = [...]string{
	Normal:       "normal",
	LineComment:  "comment",
	BlockComment: "mlcomment",
	Keyword1:     "keyword1",
	Keyword2:     "keyword2",
	String:       "string",
	Number:       "number",
	Match:        "match",
}

// String returns the class name.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Classes returns every class in declaration order.
func Classes() []Class {
	return []Class{Normal, LineComment, BlockComment, Keyword1, Keyword2, String, Number, Match}
}

func fill(hl []Class, c Class) {
	for i := range hl {
		hl[i] = c
	}
}
