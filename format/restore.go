package format

import (
	"fmt"
	"sort"
	"strings"
)

// edit replaces printed[at:end] with text. Pure insertions have at == end.
type edit struct {
	at, end int
	text    string
}

// restoreJS checks that printed is src with only layout, quotes,
// semicolons, grouping parentheses or trailing commas changed, then puts
// back what the printer drops: comments, single blank lines and the
// spelling of numeric literals. Any other difference is a *RewriteError.
func restoreJS(src, printed string) (string, error) {
	in, err := lexJS(src)
	if err != nil {
		return "", &RewriteError{Grammar: JavaScript, Msg: "cannot verify printed output: " + err.Error()}
	}
	out, err := lexJS(printed)
	if err != nil {
		return "", &RewriteError{Grammar: JavaScript, Msg: "cannot verify printed output: " + err.Error()}
	}

	r := restorer{src: src, out: printed, outToks: significant(out)}
	if err := r.align(significant(in)); err != nil {
		return "", err
	}
	r.placeTrivia(in)
	return r.apply(), nil
}

func significant(items []jsItem) []jsItem {
	var toks []jsItem
	for _, it := range items {
		if it.kind == jsToken {
			toks = append(toks, it)
		}
	}
	return toks
}

type restorer struct {
	src, out string
	outToks  []jsItem
	edits    []edit
}

func (r *restorer) align(inToks []jsItem) error {
	for i := 0; i < len(inToks) || i < len(r.outToks); i++ {
		if i >= len(inToks) || i >= len(r.outToks) {
			return r.mismatch(inToks, i)
		}
		a, b := inToks[i], r.outToks[i]
		if a.text == b.text {
			continue
		}
		if av, ok := jsStringValue(a.text); ok {
			if bv, ok := jsStringValue(b.text); ok && av == bv {
				continue
			}
		}
		if isJSNumber(a.text) && isJSNumber(b.text) {
			av, aok := jsNumberValue(a.text)
			bv, bok := jsNumberValue(b.text)
			if aok && bok && av == bv {
				r.edits = append(r.edits, edit{at: b.start, end: b.end, text: a.text})
				continue
			}
		}
		return r.mismatch(inToks, i)
	}
	return nil
}

func (r *restorer) mismatch(inToks []jsItem, i int) error {
	err := &RewriteError{Grammar: JavaScript}
	off := len(r.src)
	if i < len(inToks) {
		off = inToks[i].start
	}
	err.Line, err.Column = lineCol(r.src, off)

	switch {
	case i >= len(inToks):
		err.Msg = fmt.Sprintf("printer would add %q", r.outToks[i].text)
	case i >= len(r.outToks):
		err.Msg = fmt.Sprintf("printer would drop %q", inToks[i].text)
	default:
		err.Msg = fmt.Sprintf("printer would rewrite %s as %s", inToks[i].text, r.outToks[i].text)
	}
	return err
}

// placeTrivia re-inserts comments and blank lines from the source items
// next to the printed tokens they were attached to.
func (r *restorer) placeTrivia(in []jsItem) {
	var (
		k       int // significant tokens passed
		newline bool
		blank   bool
	)
	for i, it := range in {
		newline = newline || it.newline
		blank = blank || it.blank

		switch it.kind {
		case jsLoose:
			continue
		case jsToken:
			if blank && k > 0 && r.firstOnLine(k) {
				r.insertBlank(r.lineStart(r.outToks[k].start))
			}
			k++
		case jsComment:
			after := i+1 >= len(in) || in[i+1].newline
			r.placeComment(it.text, k, newline, blank, after)
		}
		newline, blank = false, false
	}
}

func (r *restorer) placeComment(text string, k int, newline, blank, newlineAfter bool) {
	// Trailing comment: keep it at the end of the previous token's line.
	if !newline && k > 0 && (newlineAfter || k >= len(r.outToks)) {
		r.insert(r.lineEnd(r.outToks[k-1].end), " "+text)
		return
	}

	if k >= len(r.outToks) {
		prefix := ""
		if r.out != "" && !strings.HasSuffix(r.out, "\n") {
			prefix = "\n"
		}
		if blank && r.out != "" {
			prefix += "\n"
		}
		r.insert(len(r.out), prefix+text+"\n")
		return
	}

	tok := r.outToks[k]
	ls := r.lineStart(tok.start)
	indent := leadingIndent(r.out[ls:])
	first := r.firstOnLine(k)
	if newline && blank && k > 0 && first {
		r.insertBlank(ls)
	}
	switch {
	case newline && newlineAfter && first:
		r.insert(ls, indent+text+"\n")
	case strings.HasPrefix(text, "//"):
		r.insert(tok.start, text+"\n"+indent)
	default:
		r.insert(tok.start, text+" ")
	}
}

func (r *restorer) insert(at int, text string) {
	r.edits = append(r.edits, edit{at: at, end: at, text: text})
}

// insertBlank adds an empty line before the line starting at ls unless the
// printed output already has one there.
func (r *restorer) insertBlank(ls int) {
	if ls >= 2 && r.out[ls-2] == '\n' {
		return
	}
	r.insert(ls, "\n")
}

// firstOnLine reports whether printed token k starts its output line.
func (r *restorer) firstOnLine(k int) bool {
	if k == 0 {
		return true
	}
	ls := r.lineStart(r.outToks[k].start)
	return r.outToks[k-1].end <= ls
}

func (r *restorer) lineStart(pos int) int {
	return strings.LastIndexByte(r.out[:pos], '\n') + 1
}

func (r *restorer) lineEnd(pos int) int {
	if i := strings.IndexByte(r.out[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(r.out)
}

func (r *restorer) apply() string {
	// Insertions at an offset go before a replacement starting there.
	sort.SliceStable(r.edits, func(i, j int) bool {
		a, b := r.edits[i], r.edits[j]
		if a.at != b.at {
			return a.at < b.at
		}
		return a.at == a.end && b.at != b.end
	})

	var b strings.Builder
	pos := 0
	for _, e := range r.edits {
		if e.at < pos {
			continue
		}
		b.WriteString(r.out[pos:e.at])
		b.WriteString(e.text)
		pos = e.end
	}
	b.WriteString(r.out[pos:])
	return b.String()
}

func leadingIndent(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}
