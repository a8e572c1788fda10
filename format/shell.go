package format

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/syntax"
)

const shIndent = 2

func printShell(text string, opts Options) (string, error) {
	f, err := syntax.NewParser(syntax.KeepComments(true)).Parse(strings.NewReader(text), "")
	if err != nil {
		return "", shSyntaxError(err)
	}

	indent := uint(shIndent)
	if opts.UseTabs {
		indent = 0
	}
	var buf bytes.Buffer
	if err := syntax.NewPrinter(syntax.Indent(indent)).Print(&buf, f); err != nil {
		return "", errors.Wrap(err, "shell: print")
	}
	return buf.String(), nil
}

func shSyntaxError(err error) *SyntaxError {
	var perr syntax.ParseError
	if errors.As(err, &perr) {
		return &SyntaxError{
			Grammar: Shell,
			Line:    int(perr.Pos.Line()),
			Column:  int(perr.Pos.Col()),
			Msg:     perr.Text,
		}
	}
	return &SyntaxError{Grammar: Shell, Msg: err.Error()}
}
