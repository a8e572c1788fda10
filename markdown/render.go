package markdown

import (
	"bytes"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
)

// Result holds both rendered surfaces of one source.
type Result struct {
	HTML     string
	Terminal string

	// Sanitized is true when the policy removed markup from either surface.
	Sanitized bool
}

// Renderer is safe for sequential use only; glamour's renderer keeps state
// between calls.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	term   *glamour.TermRenderer
	style  string
	width  int
	log    *zap.Logger
}

func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		style: DefaultStyle,
		width: DefaultWordWrap,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.policy == nil {
		r.policy = DefaultPolicy()
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}

	// Raw HTML is passed through on purpose: the policy decides what stays.
	r.md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	if err := r.buildTerm(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) buildTerm() error {
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithPreservedNewLines(),
		glamour.WithWordWrap(max(r.width, 0)),
	)
	if err != nil {
		return errors.Wrapf(err, "markdown: terminal renderer (style %q)", r.style)
	}
	r.term = term
	return nil
}

// SetWordWrap rebuilds the terminal renderer for a new width.
func (r *Renderer) SetWordWrap(width int) error {
	if width == r.width {
		return nil
	}
	r.width = width
	return r.buildTerm()
}

func (r *Renderer) WordWrap() int { return r.width }

// HTML converts source to sanitized HTML. stripped reports whether the
// policy removed anything.
func (r *Renderer) HTML(source string) (out string, stripped bool, err error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", false, errors.Wrap(err, "markdown: convert")
	}
	raw := buf.String()
	clean := r.policy.Sanitize(raw)
	return clean, removedMarkup(raw, clean), nil
}

// Terminal renders source for a terminal after sanitizing its raw HTML.
func (r *Renderer) Terminal(source string) (out string, stripped bool, err error) {
	safe, stripped := r.sanitizeSource(source)
	out, err = r.term.Render(safe)
	if err != nil {
		return "", stripped, errors.Wrap(err, "markdown: terminal render")
	}
	return out, stripped, nil
}

// Render produces both surfaces.
func (r *Renderer) Render(source string) (Result, error) {
	h, hs, err := r.HTML(source)
	if err != nil {
		return Result{}, err
	}
	t, ts, err := r.Terminal(source)
	if err != nil {
		return Result{}, err
	}

	res := Result{HTML: h, Terminal: t, Sanitized: hs || ts}
	if res.Sanitized {
		r.log.Debug("markdown sanitized", zap.Int("source_bytes", len(source)))
	}
	return res, nil
}
