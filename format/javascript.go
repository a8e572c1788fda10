package format

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

// esbuild prints two-space indentation, double-quoted strings where no
// escaping is saved otherwise, and always terminates statements. It also
// drops comments and folds constants, so its output goes through restoreJS.
const jsIndent = 2

func printJavaScript(text string, opts Options) (string, error) {
	if opts.SingleQuote {
		return "", errors.Wrap(ErrUnsupportedOption, "javascript: single quotes")
	}
	if !opts.Semicolons {
		return "", errors.Wrap(ErrUnsupportedOption, "javascript: semicolon-free output")
	}

	res := api.Transform(text, api.TransformOptions{
		Loader:        api.LoaderJSX,
		JSX:           api.JSXPreserve,
		Charset:       api.CharsetUTF8,
		LegalComments: api.LegalCommentsNone,
		LogLevel:      api.LogLevelSilent,
	})
	if len(res.Errors) > 0 {
		return "", jsSyntaxError(res.Errors[0])
	}

	out, err := restoreJS(text, string(res.Code))
	if err != nil {
		return "", err
	}
	if opts.UseTabs {
		return jsTabIndent(out)
	}
	return out, nil
}

// jsTabIndent converts indentation to tabs on lines that start outside a
// multi-line lexeme. Template literal and comment bodies keep their spaces.
func jsTabIndent(out string) (string, error) {
	items, err := lexJS(out)
	if err != nil {
		return "", &RewriteError{Grammar: JavaScript, Msg: "cannot verify printed output: " + err.Error()}
	}
	inside := func(off int) bool {
		for _, it := range items {
			if it.start < off && off < it.end {
				return true
			}
		}
		return false
	}
	return tabIndent(out, jsIndent, inside), nil
}

func jsSyntaxError(msg api.Message) *SyntaxError {
	err := &SyntaxError{Grammar: JavaScript, Msg: strings.TrimSpace(msg.Text)}
	if loc := msg.Location; loc != nil {
		err.Line = loc.Line
		err.Column = loc.Column + 1
	}
	return err
}
