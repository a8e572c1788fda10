package mdpanel

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iw2rmb/panes/markdown"
	"github.com/iw2rmb/panes/pointer"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Narrower panels edit without the live preview.
const minSplitWidth = 24

// Model is a Bubble Tea markdown editor/preview component.
type Model struct {
	id  int
	cfg Config
	log *zap.Logger

	mode   Mode
	text   string
	editor textarea.Model
	// Editor value right after it was loaded. The textarea normalizes what
	// it is given, so only a departure from this counts as an edit.
	base string

	// Preview surface while viewing, live preview pane while editing.
	vp viewport.Model

	bounds  pointer.Rect
	focused bool

	// session numbers editing sessions; release drops the click-outside
	// subscription and is nil when none is held.
	session uint64
	release func()

	preview    markdown.Result
	previewErr error
}

func New(cfg Config) Model {
	if cfg.Text == "" && !cfg.KeepEmpty {
		cfg.Text = DefaultText
	}
	if len(cfg.KeyMap.Edit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	m := Model{
		id:      nextID(),
		cfg:     cfg,
		log:     cfg.Logger.With(zap.String("component", "mdpanel")),
		mode:    Viewing,
		text:    cfg.Text,
		vp:      viewport.New(0, 0),
		focused: true,
	}
	if m.cfg.Renderer == nil {
		r, err := markdown.New(markdown.WithLogger(cfg.Logger))
		if err != nil {
			m.log.Warn("preview renderer unavailable", zap.Error(err))
		}
		m.cfg.Renderer = r
	}

	m.editor = textarea.New()
	m.editor.ShowLineNumbers = false
	m.editor.CharLimit = 0
	m.editor.MaxHeight = 0
	m.editor.Placeholder = ""

	m.refreshPreview()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) ID() int { return m.id }

func (m Model) Mode() Mode { return m.mode }

// Value returns the held text. While editing it follows every keystroke.
func (m Model) Value() string { return m.text }

// Preview returns the last preview render. While editing it is the live
// preview of the text being edited.
func (m Model) Preview() (markdown.Result, error) { return m.preview, m.previewErr }

func (m Model) Bounds() pointer.Rect { return m.bounds }

// Subscribed reports whether the panel holds a click-outside subscription.
func (m Model) Subscribed() bool { return m.release != nil }

func (m Model) SetSize(width, height int) Model {
	m.bounds.Width, m.bounds.Height = max(width, 0), max(height, 0)
	m.layout()
	if m.mode == Editing {
		m.subscribe()
	}
	return m
}

// SetBounds places the panel on screen; presses are matched against it.
func (m Model) SetBounds(r pointer.Rect) Model {
	m.bounds.X, m.bounds.Y = r.X, r.Y
	return m.SetSize(r.Width, r.Height)
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Close releases the click-outside subscription. Call it when the panel is
// torn down; it is safe to call more than once.
func (m Model) Close() {
	if m.release != nil {
		m.release()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case pointer.ClickedOutsideMsg:
		if msg.ID == m.id && msg.Session == m.session {
			return m.StopEditing(), nil
		}
		return m, nil

	case tea.MouseMsg:
		inside := m.bounds.Contains(msg.X, msg.Y)
		if pointer.IsLeftPress(msg) {
			switch {
			case m.mode == Viewing && inside:
				return m.StartEditing()
			case m.mode == Editing && !inside && m.cfg.Bus == nil:
				return m.StopEditing(), nil
			}
		}
		if m.mode == Viewing {
			if !inside {
				return m, nil
			}
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case m.mode == Viewing && key.Matches(msg, m.cfg.KeyMap.Edit):
			return m.StartEditing()
		case m.mode == Editing && key.Matches(msg, m.cfg.KeyMap.Done):
			return m.StopEditing(), nil
		case m.mode == Viewing:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	if m.mode != Editing {
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != m.base {
		m.base = v
		m.text = v
		m.refreshPreview()
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(v)
		}
	}
	return m, cmd
}

// StartEditing switches to the edit surface and starts watching for presses
// outside the panel.
func (m Model) StartEditing() (Model, tea.Cmd) {
	if m.mode == Editing {
		return m, nil
	}
	m.mode = Editing
	m.session++
	m.editor.SetValue(m.text)
	m.base = m.editor.Value()
	cmd := m.editor.Focus()
	m.layout()
	m.subscribe()
	m.log.Debug("editing started", zap.Uint64("session", m.session))
	return m, cmd
}

// StopEditing switches back to the preview. The edited text is kept.
func (m Model) StopEditing() Model {
	if m.mode != Editing {
		return m
	}
	m.unsubscribe()
	m.editor.Blur()
	m.mode = Viewing
	m.layout()
	m.log.Debug("editing stopped", zap.Int("bytes", len(m.text)))
	return m
}

func (m *Model) subscribe() {
	m.unsubscribe()
	if m.cfg.Bus == nil {
		return
	}
	m.release = m.cfg.Bus.Subscribe(pointer.ClickOutside(m.id, m.session, m.bounds))
}

func (m *Model) unsubscribe() {
	if m.release == nil {
		return
	}
	m.release()
	m.release = nil
}

// splitWidths divides the editing surface between the editor and the live
// preview, leaving one column for the divider. previewW is zero when the
// panel is too narrow for both.
func splitWidths(width int) (editorW, previewW int) {
	if width < minSplitWidth {
		return width, 0
	}
	editorW = (width - 1) / 2
	return editorW, width - 1 - editorW
}

// layout sizes the surfaces of the current mode and re-renders the preview
// at the width it is shown at.
func (m *Model) layout() {
	w, h := m.bounds.Width, m.bounds.Height
	previewW := w
	if m.mode == Editing {
		var editorW int
		editorW, previewW = splitWidths(w)
		if w > 0 {
			m.editor.SetWidth(editorW)
			m.editor.SetHeight(h)
		}
	}
	previewW -= m.cfg.Style.Preview.GetHorizontalFrameSize()
	m.vp.Width = max(previewW, 0)
	m.vp.Height = max(h-m.cfg.Style.Preview.GetVerticalFrameSize(), 0)

	if m.cfg.Renderer != nil && previewW > 0 {
		if err := m.cfg.Renderer.SetWordWrap(previewW); err != nil {
			m.log.Warn("preview resize failed", zap.Error(err))
		}
	}
	m.refreshPreview()
}

var errNoRenderer = errors.New("mdpanel: no preview renderer")

func (m *Model) refreshPreview() {
	if m.cfg.Renderer == nil {
		m.preview, m.previewErr = markdown.Result{}, errNoRenderer
	} else {
		m.preview, m.previewErr = m.cfg.Renderer.Render(m.text)
		if m.previewErr != nil {
			m.log.Warn("preview render failed", zap.Error(m.previewErr))
		}
	}
	m.vp.SetContent(m.previewText())
}

// previewText never falls back to the raw text: it has not been sanitized.
func (m Model) previewText() string {
	if m.previewErr != nil {
		return "(preview unavailable)"
	}
	return strings.Trim(m.preview.Terminal, "\n")
}

func (m Model) previewView() string {
	if m.vp.Width == 0 || m.vp.Height == 0 {
		return m.cfg.Style.Preview.Render(m.previewText())
	}
	return m.cfg.Style.Preview.Render(m.vp.View())
}

func (m Model) View() string {
	if m.mode == Viewing {
		return m.previewView()
	}

	editor := m.cfg.Style.Editor.Render(m.editor.View())
	if _, previewW := splitWidths(m.bounds.Width); previewW == 0 {
		return editor
	}
	rows := max(lipgloss.Height(editor), 1)
	divider := m.cfg.Style.Divider.Render(strings.TrimSuffix(strings.Repeat("│\n", rows), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, editor, divider, m.previewView())
}
