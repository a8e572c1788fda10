package format

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

type jsKind int

const (
	jsToken jsKind = iota
	// jsLoose marks punctuation the printer may add or drop without
	// changing the program: semicolons, grouping parentheses and
	// trailing commas.
	jsLoose
	jsComment
)

// jsItem is one non-whitespace lexeme with its byte range.
type jsItem struct {
	kind       jsKind
	text       string
	start, end int

	// newline is set when a line break precedes the item, or when the item
	// opens the file. blank is set when an empty line precedes it.
	newline bool
	blank   bool
}

// lexJS splits src into lexemes. Whitespace is folded into the newline and
// blank flags of the item that follows it.
func lexJS(src string) ([]jsItem, error) {
	l := js.NewLexer(parse.NewInputString(src))

	var (
		items  []jsItem
		pos    int
		breaks int
		prev   string
	)
	for {
		tt, data := l.Next()
		if tt == js.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, errors.Wrap(err, "lex")
			}
			break
		}

		start := pos
		text := string(data)
		if (text == "/" || text == "/=") && regexpAllowed(prev) {
			tt, data = l.RegExp()
			if tt == js.ErrorToken {
				return nil, errors.Wrap(l.Err(), "lex regexp")
			}
			text = string(data)
		}
		pos = start + len(text)

		if strings.TrimSpace(text) == "" {
			breaks += strings.Count(text, "\n")
			if !strings.Contains(text, "\n") && strings.ContainsAny(text, "\r\u2028\u2029") {
				breaks++
			}
			continue
		}

		it := jsItem{
			kind:    jsToken,
			text:    text,
			start:   start,
			end:     pos,
			newline: breaks > 0 || len(items) == 0,
			blank:   breaks > 1,
		}
		breaks = 0

		switch {
		case strings.HasPrefix(text, "//"), strings.HasPrefix(text, "/*"):
			it.kind = jsComment
		case text == ";", text == "(", text == ")":
			it.kind = jsLoose
			prev = text
		default:
			prev = text
		}
		items = append(items, it)
	}

	markTrailingCommas(items)
	return items, nil
}

// markTrailingCommas marks commas directly followed by a closing bracket.
func markTrailingCommas(items []jsItem) {
	for i := range items {
		if items[i].text != "," {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if items[j].kind == jsComment {
				continue
			}
			switch items[j].text {
			case "]", "}", ")":
				items[i].kind = jsLoose
			}
			break
		}
	}
}

var keywordsBeforeExpr = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true,
	"of": true, "new": true, "delete": true, "void": true, "throw": true,
	"case": true, "do": true, "else": true, "yield": true, "await": true,
}

// regexpAllowed reports whether a "/" after prev starts a regular
// expression rather than a division.
func regexpAllowed(prev string) bool {
	if prev == "" {
		return true
	}
	switch prev {
	case ")", "]", "}", "<", "++", "--":
		return false
	case "/", "/=":
		return true
	}
	c := prev[0]
	switch {
	case c == '_' || c == '$' || c >= utf8.RuneSelf ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z'):
		return keywordsBeforeExpr[prev]
	case isJSNumber(prev):
		return false
	case c == '\'' || c == '"' || c == '`' || c == '}' || c == '/' || c == '#':
		return false
	}
	return true
}

func isJSNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return true
	}
	return len(s) > 1 && s[0] == '.' && s[1] >= '0' && s[1] <= '9'
}

// jsNumberValue returns the value of a numeric literal. BigInt literals
// report false.
func jsNumberValue(s string) (float64, bool) {
	s = strings.ReplaceAll(s, "_", "")
	if strings.HasSuffix(s, "n") {
		return 0, false
	}
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			n, err := strconv.ParseUint(s, 0, 64)
			return float64(n), err == nil
		}
		if strings.Trim(s, "01234567") == "" {
			n, err := strconv.ParseUint(s[1:], 8, 64)
			return float64(n), err == nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// jsStringValue decodes a single- or double-quoted string literal.
func jsStringValue(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if (q != '"' && q != '\'') || s[len(s)-1] != q {
		return "", false
	}
	body := s[1 : len(s)-1]

	var units []rune
	for i := 0; i < len(body); {
		r, size := utf8.DecodeRuneInString(body[i:])
		i += size
		if r != '\\' {
			units = append(units, r)
			continue
		}
		if i >= len(body) {
			return "", false
		}
		r, size = utf8.DecodeRuneInString(body[i:])
		i += size
		switch r {
		case 'n':
			units = append(units, '\n')
		case 't':
			units = append(units, '\t')
		case 'r':
			units = append(units, '\r')
		case 'b':
			units = append(units, '\b')
		case 'f':
			units = append(units, '\f')
		case 'v':
			units = append(units, '\v')
		case '0':
			units = append(units, 0)
		case '\r':
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n', '\u2028', '\u2029':
		case 'x':
			if i+2 > len(body) {
				return "", false
			}
			n, err := strconv.ParseUint(body[i:i+2], 16, 32)
			if err != nil {
				return "", false
			}
			units = append(units, rune(n))
			i += 2
		case 'u':
			hex := ""
			if i < len(body) && body[i] == '{' {
				end := strings.IndexByte(body[i:], '}')
				if end < 0 {
					return "", false
				}
				hex, i = body[i+1:i+end], i+end+1
			} else {
				if i+4 > len(body) {
					return "", false
				}
				hex, i = body[i:i+4], i+4
			}
			n, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return "", false
			}
			units = append(units, rune(n))
		default:
			units = append(units, r)
		}
	}

	var b strings.Builder
	for i := 0; i < len(units); i++ {
		r := units[i]
		if utf16.IsSurrogate(r) && i+1 < len(units) {
			if pair := utf16.DecodeRune(r, units[i+1]); pair != utf8.RuneError {
				b.WriteRune(pair)
				i++
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

// lineCol converts a byte offset to a 1-based line and column.
func lineCol(src string, off int) (int, int) {
	if off > len(src) {
		off = len(src)
	}
	before := src[:off]
	line := strings.Count(before, "\n") + 1
	col := off - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}
