package markdown

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	DefaultStyle    = "dark"
	DefaultWordWrap = 80
)

type Option func(*Renderer)

// WithWordWrap sets the terminal wrap width. Non-positive widths disable
// wrapping.
func WithWordWrap(width int) Option {
	return func(r *Renderer) { r.width = width }
}

// WithStyle selects a glamour standard style ("dark", "light", "notty",
// "ascii", ...).
func WithStyle(name string) Option {
	return func(r *Renderer) { r.style = name }
}

// WithPolicy replaces the sanitizer policy.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(r *Renderer) { r.policy = p }
}

func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

var checkboxType = regexp.MustCompile(`^checkbox$`)

// DefaultPolicy is bluemonday's user-generated-content policy plus the
// read-only checkboxes goldmark emits for task lists.
func DefaultPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("type").Matching(checkboxType).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}
