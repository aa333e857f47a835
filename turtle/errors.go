package turtle

import "fmt"

// Pos is a 1-based line/column position in the source text.
type Pos struct {
	Line   int
	Column int
}

// String returns the position as "line:column".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError reports malformed input. It carries the position of the
// offending token and a description of the construct the parser expected.
// Any SyntaxError aborts the whole load; no partial data survives.
type SyntaxError struct {
	Pos      Pos
	Expected string
	Found    string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("line %s: expected %s", e.Pos, e.Expected)
	}
	return fmt.Sprintf("line %s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// UnknownPrefixError reports use of a prefix that was not declared before
// use. It is a parse-time failure, never auto-corrected.
type UnknownPrefixError struct {
	Pos    Pos
	Prefix string
}

// Error implements the error interface.
func (e *UnknownPrefixError) Error() string {
	return fmt.Sprintf("line %s: unknown prefix %q", e.Pos, e.Prefix+":")
}
