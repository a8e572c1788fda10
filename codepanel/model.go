package codepanel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/panes/pointer"
)

// Rows taken by the toolbar and the status line.
const chromeHeight = 2

// Model is a Bubble Tea component wrapping a code editing widget.
type Model struct {
	id     int
	cfg    Config
	log    *zap.Logger
	handle Handle

	// Widget text as of the last sync.
	last string

	bounds  pointer.Rect
	focused bool
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	return Model{
		id:      nextID(),
		cfg:     cfg,
		log:     cfg.Logger.With(zap.String("component", "codepanel")),
		focused: true,
	}
}

func (m Model) ID() int { return m.id }

func (m Model) Handle() Handle { return m.handle }

// Value returns the widget text, or "" while unmounted.
func (m Model) Value() string {
	if w, ok := m.handle.Widget(); ok {
		return w.Value()
	}
	return ""
}

// Init builds the widget off the event loop and reports it with MountedMsg.
func (m Model) Init() tea.Cmd {
	id, factory := m.id, m.cfg.NewWidget
	text, opts := m.cfg.DefaultValue, m.cfg.Options
	return func() tea.Msg {
		return MountedMsg{ID: id, Widget: factory(text, opts)}
	}
}

// Mount stores w in the handle. The mounted text is taken as the baseline
// and not reported through OnChange.
func (m Model) Mount(w Widget) (Model, tea.Cmd) {
	m.handle = mounted(w)
	if m.handle.State() != Mounted {
		return m, nil
	}
	m.last = w.Value()
	m.layoutWidget()
	m.log.Debug("widget mounted", zap.Int("bytes", len(m.last)))
	m.warnLostLines(w)

	if m.focused {
		return m, w.Focus()
	}
	w.Blur()
	return m, nil
}

// Unmount drops the widget. Later operations see an Unmounted handle.
func (m Model) Unmount() Model {
	if w, ok := m.handle.Widget(); ok {
		w.Blur()
		m.log.Debug("widget unmounted")
	}
	m.handle = Handle{}
	return m
}

// SetSize sets the panel size in cells, toolbar and status line included.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.bounds.Width = width
	m.bounds.Height = height
	m.layoutWidget()
	return m
}

// SetBounds places the panel on screen. Mouse coordinates are matched
// against it.
func (m Model) SetBounds(r pointer.Rect) Model {
	m = m.SetSize(r.Width, r.Height)
	m.bounds.X, m.bounds.Y = r.X, r.Y
	return m
}

func (m Model) Bounds() pointer.Rect { return m.bounds }

func (m Model) Focus() (Model, tea.Cmd) {
	m.focused = true
	if w, ok := m.handle.Widget(); ok {
		return m, w.Focus()
	}
	return m, nil
}

func (m Model) Blur() Model {
	m.focused = false
	if w, ok := m.handle.Widget(); ok {
		w.Blur()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MountedMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.Mount(msg.Widget)
	case tea.WindowSizeMsg:
		if m.cfg.Options.AutomaticLayout {
			return m.SetSize(msg.Width, msg.Height), nil
		}
		return m, nil
	case tea.KeyMsg:
		if m.focused && key.Matches(msg, m.cfg.KeyMap.Format) {
			return m.updateFormat()
		}
		if !m.focused {
			return m, nil
		}
	case tea.MouseMsg:
		if pointer.IsLeftPress(msg) && m.buttonRect().Contains(msg.X, msg.Y) {
			return m.updateFormat()
		}
	}

	w, ok := m.handle.Widget()
	if !ok {
		return m, nil
	}
	cmd := w.Update(msg)
	m.syncFromWidget()
	return m, cmd
}

func (m Model) updateFormat() (Model, tea.Cmd) {
	id := m.id
	outcome, err := (&m).Format()
	if err != nil {
		return m, func() tea.Msg { return FormatFailedMsg{ID: id, Err: err} }
	}
	return m, func() tea.Msg { return FormattedMsg{ID: id, Outcome: outcome} }
}

// syncFromWidget reports a changed widget text through OnChange.
func (m *Model) syncFromWidget() {
	w, ok := m.handle.Widget()
	if !ok {
		return
	}
	text := w.Value()
	if text == m.last {
		return
	}
	m.last = text

	if text == "" {
		m.log.Debug("empty change not forwarded")
		return
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(text)
	}
}

// lineLimiter is implemented by widgets that cap the number of lines they
// hold.
type lineLimiter interface {
	LostLines() int
}

func (m *Model) warnLostLines(w Widget) {
	if l, ok := w.(lineLimiter); ok && l.LostLines() > 0 {
		m.log.Warn("widget truncated its text", zap.Int("lost_lines", l.LostLines()))
	}
}

func (m *Model) layoutWidget() {
	w, ok := m.handle.Widget()
	if !ok || m.bounds.Width == 0 {
		return
	}
	w.SetSize(m.bounds.Width, max(m.bounds.Height-chromeHeight, 1))
}
