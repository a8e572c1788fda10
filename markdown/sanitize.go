package markdown

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// sanitizeSource replaces every raw HTML fragment in source (HTML blocks and
// inline HTML) with the policy's rendition of it. The markdown around the
// fragments is left byte-for-byte intact.
func (r *Renderer) sanitizeSource(source string) (string, bool) {
	src := []byte(source)
	doc := r.md.Parser().Parse(text.NewReader(src))

	var spans []span
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.HTMLBlock:
			if s, ok := blockSpan(n, src); ok {
				spans = append(spans, s)
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				spans = append(spans, span{start: seg.Start, stop: seg.Stop})
			}
		}
		return ast.WalkContinue, nil
	})
	if len(spans) == 0 {
		return source, false
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var sb strings.Builder
	changed := false
	last := 0
	for _, s := range spans {
		if s.start < last {
			continue
		}
		sb.Write(src[last:s.start])
		orig := string(src[s.start:s.stop])
		if s.parts != nil {
			orig = s.content(src)
		}
		clean := r.policy.Sanitize(orig)
		if strings.HasSuffix(orig, "\n") && !strings.HasSuffix(clean, "\n") {
			clean += "\n"
		}
		if removedMarkup(orig, clean) {
			changed = true
		}
		sb.WriteString(s.rejoin(src, clean))
		last = s.stop
	}
	sb.Write(src[last:])
	return sb.String(), changed
}

// span is a raw HTML region of the source. An HTML block nested in a
// blockquote or list is split by container markers; parts then holds its
// line segments and the markers stay out of the sanitized text.
type span struct {
	start, stop int
	parts       []text.Segment
}

func blockSpan(n *ast.HTMLBlock, src []byte) (span, bool) {
	lines := n.Lines()
	if lines.Len() == 0 {
		return span{}, false
	}
	parts := make([]text.Segment, 0, lines.Len()+1)
	for i := 0; i < lines.Len(); i++ {
		parts = append(parts, lines.At(i))
	}
	if n.HasClosure() {
		parts = append(parts, n.ClosureLine)
	}

	s := span{start: parts[0].Start, stop: parts[len(parts)-1].Stop}
	for i := 1; i < len(parts); i++ {
		if parts[i].Start != parts[i-1].Stop {
			s.parts = parts
			break
		}
	}
	return s, true
}

// content is the block text without the container markers between parts.
func (s span) content(src []byte) string {
	var sb strings.Builder
	for _, p := range s.parts {
		sb.Write(p.Value(src))
	}
	return sb.String()
}

// rejoin puts the container markers back in front of every line of clean
// after the first. Extra lines reuse the last marker.
func (s span) rejoin(src []byte, clean string) string {
	if s.parts == nil {
		return clean
	}
	var markers []string
	for i := 1; i < len(s.parts); i++ {
		gap := string(src[s.parts[i-1].Stop:s.parts[i].Start])
		markers = append(markers, strings.TrimLeft(gap, "\r\n"))
	}

	trailing := strings.HasSuffix(clean, "\n")
	lines := strings.Split(strings.TrimSuffix(clean, "\n"), "\n")
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
			if len(markers) > 0 {
				sb.WriteString(markers[min(i-1, len(markers)-1)])
			}
		}
		sb.WriteString(line)
	}
	if trailing {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// markup summarizes an HTML fragment for comparison: element counts,
// attribute count and decoded text.
type markup struct {
	elems map[string]int
	attrs int
	text  string
}

// Attributes a policy adds rather than removes.
var addedAttrs = map[string]bool{"rel": true, "target": true}

func summarize(s string) markup {
	m := markup{elems: make(map[string]int)}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			m.text = strings.TrimSpace(sb.String())
			return m
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			m.elems[tok.Data]++
			for _, a := range tok.Attr {
				if !addedAttrs[a.Key] {
					m.attrs++
				}
			}
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

// removedMarkup reports whether clean lost elements, attributes or text
// present in raw.
func removedMarkup(raw, clean string) bool {
	if raw == clean {
		return false
	}
	a, b := summarize(raw), summarize(clean)
	for name, n := range a.elems {
		if b.elems[name] < n {
			return true
		}
	}
	return a.attrs > b.attrs || a.text != b.text
}
