package format

import (
	"strings"

	"github.com/pkg/errors"
)

// Formatter formats source text.
type Formatter interface {
	Format(text string, opts Options) (string, error)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(text string, opts Options) (string, error)

func (f FormatterFunc) Format(text string, opts Options) (string, error) { return f(text, opts) }

// Default formats with the printers registered in this package.
var Default Formatter = FormatterFunc(Format)

type printer func(text string, opts Options) (string, error)

var printers = map[Grammar]printer{
	JavaScript: printJavaScript,
	Shell:      printShell,
}

// Format prints text with the printer for opts.Grammar. The result is what
// the printer produced, including its trailing newline.
func Format(text string, opts Options) (string, error) {
	p, ok := printers[opts.Grammar]
	if !ok {
		return "", errors.Wrapf(ErrUnknownGrammar, "%q", opts.Grammar)
	}
	return p(text, opts)
}

// TrimTrailingNewline removes exactly one trailing "\n", if present.
func TrimTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

// tabIndent rewrites leading runs of width-space indentation units as tabs.
// Lines whose start offset satisfies keep are left alone.
func tabIndent(s string, width int, keep func(offset int) bool) string {
	if width <= 0 {
		return s
	}
	unit := strings.Repeat(" ", width)
	lines := strings.Split(s, "\n")
	off := 0
	for i, line := range lines {
		start := off
		off += len(line) + 1
		if keep != nil && keep(start) {
			continue
		}
		n := 0
		for strings.HasPrefix(line[n*width:], unit) {
			n++
		}
		if n > 0 {
			lines[i] = strings.Repeat("\t", n) + line[n*width:]
		}
	}
	return strings.Join(lines, "\n")
}
