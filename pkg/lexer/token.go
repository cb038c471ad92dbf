package lexer

import "fmt"

// Token is one classified unit of scanned source.
type Token struct {
	Category string `json:"category"`
	Value    string `json:"value"`           // text selected by the rule's capture group
	Match    string `json:"match,omitempty"` // full match, may extend past Value
	Offset   int    `json:"offset"`          // byte offset in the normalized input
	Line     int    `json:"line"`            // 1-based
	Column   int    `json:"column"`          // 0-based byte offset within the line
}

// Len returns the number of input bytes the token consumed
func (t Token) Len() int {
	return len(t.Value)
}

// End returns the offset just past the consumed bytes
func (t Token) End() int {
	return t.Offset + len(t.Value)
}

func (t Token) String() string {
	return fmt.Sprintf("Token[%s %q @%d %d:%d]", t.Category, t.Value, t.Offset, t.Line, t.Column)
}
