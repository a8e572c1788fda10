package format

import "fmt"

// SyntaxError is returned when the input is not valid for the grammar.
// Line and Column are 1-based; zero means unknown.
type SyntaxError struct {
	Grammar Grammar
	Line    int
	Column  int
	Msg     string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %d:%d: %s", e.Grammar, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Grammar, e.Msg)
}

// RewriteError is returned when the printer would change the program beyond
// layout, quote style, semicolons, grouping parentheses or trailing commas.
// Line and Column point into the input; zero means unknown.
type RewriteError struct {
	Grammar Grammar
	Line    int
	Column  int
	Msg     string
}

func (e *RewriteError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %d:%d: %s", e.Grammar, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Grammar, e.Msg)
}
