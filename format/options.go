package format

import (
	"strings"

	"github.com/pkg/errors"
)

// Grammar selects the printer used by Format.
type Grammar string

const (
	JavaScript Grammar = "javascript"
	Shell      Grammar = "shell"
)

var (
	ErrUnknownGrammar    = errors.New("unknown grammar")
	ErrUnsupportedOption = errors.New("unsupported format option")
)

// Options are the style options passed to a printer.
type Options struct {
	Grammar     Grammar
	UseTabs     bool
	SingleQuote bool
	Semicolons  bool
}

// DefaultOptions returns the configuration the code panel always formats
// with.
func DefaultOptions() Options {
	return Options{
		Grammar:     JavaScript,
		UseTabs:     false,
		SingleQuote: false,
		Semicolons:  true,
	}
}

// ParseGrammar maps user-facing names (file extensions, parser names) to a
// Grammar.
func ParseGrammar(name string) (Grammar, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "js", "jsx", "mjs", "cjs", "javascript", "babel":
		return JavaScript, nil
	case "sh", "bash", "shell":
		return Shell, nil
	}
	return "", errors.Wrapf(ErrUnknownGrammar, "%q", name)
}
