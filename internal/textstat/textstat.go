// Package textstat measures text for status lines: grapheme counts and
// cell-width-aware truncation.
package textstat

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Stats describes a document as an editor status line shows it.
type Stats struct {
	Lines     int
	Graphemes int
}

// Of returns the stats for text. An empty document has one line.
func Of(text string) Stats {
	return Stats{
		Lines:     strings.Count(text, "\n") + 1,
		Graphemes: Count(text),
	}
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w == 0 && text != "" {
		// runewidth reports zero for some emoji sequences.
		w = uniseg.StringWidth(text)
	}
	return w
}

// Fit truncates text to at most width cells, ending with an ellipsis when
// anything was cut. Grapheme clusters are never split.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	const tail = "…"
	budget := width - runewidth.StringWidth(tail)

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cw := Width(g.Str())
		if used+cw > budget {
			break
		}
		sb.WriteString(g.Str())
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}

// FirstLine returns text up to its first newline.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
