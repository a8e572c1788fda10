package mdpanel

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/panes/markdown"
	"github.com/iw2rmb/panes/pointer"
)

const editPrompt = "┃"

func plainRenderer(t *testing.T) *markdown.Renderer {
	t.Helper()
	r, err := markdown.New(markdown.WithStyle("notty"), markdown.WithWordWrap(60))
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return r
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func newPanel(t *testing.T, cfg Config) (Model, *pointer.Bus) {
	t.Helper()
	if cfg.Renderer == nil {
		cfg.Renderer = plainRenderer(t)
	}
	m := New(cfg)
	m = m.SetBounds(pointer.Rect{X: 0, Y: 0, Width: 40, Height: 10})
	return m, cfg.Bus
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestNew_StartsViewingDefaultText(t *testing.T) {
	m, _ := newPanel(t, Config{})

	if got := m.Mode(); got != Viewing {
		t.Fatalf("mode: got %v, want %v", got, Viewing)
	}
	if got := m.Value(); got != "# Hello world!!!" {
		t.Fatalf("text: got %q", got)
	}
	view := m.View()
	if !strings.Contains(view, "Hello world!!!") {
		t.Fatalf("preview lacks heading:\n%s", view)
	}
	if strings.Contains(view, editPrompt) {
		t.Fatalf("preview must not show the edit surface:\n%s", view)
	}
}

func TestClickPreviewThenOutside(t *testing.T) {
	var changes []string
	bus := pointer.NewBus(nil)
	m, _ := newPanel(t, Config{Bus: bus, OnChange: func(s string) { changes = append(changes, s) }})

	m, _ = m.Update(press(5, 5))
	if got := m.Mode(); got != Editing {
		t.Fatalf("mode after preview click: got %v, want %v", got, Editing)
	}
	if got := bus.Len(); got != 1 {
		t.Fatalf("subscriptions while editing: got %d, want 1", got)
	}
	if !strings.Contains(m.View(), editPrompt) {
		t.Fatalf("editing must show the edit surface:\n%s", m.View())
	}

	m = typeText(m, " bye")
	if got := m.Value(); got != "# Hello world!!! bye" {
		t.Fatalf("text while editing: got %q", got)
	}
	if len(changes) != 1 || changes[0] != "# Hello world!!! bye" {
		t.Fatalf("changes: got %q", changes)
	}

	// A press inside keeps editing.
	if msgs := drain(bus.Dispatch(press(1, 1))); len(msgs) != 0 {
		t.Fatalf("press inside produced %v", msgs)
	}

	for _, msg := range drain(bus.Dispatch(press(60, 3))) {
		m, _ = m.Update(msg)
	}
	if got := m.Mode(); got != Viewing {
		t.Fatalf("mode after outside click: got %v, want %v", got, Viewing)
	}
	if got := m.Value(); got != "# Hello world!!! bye" {
		t.Fatalf("text after outside click: got %q", got)
	}
	if got := bus.Len(); got != 0 {
		t.Fatalf("subscriptions after leaving edit mode: got %d, want 0", got)
	}
	if view := m.View(); !strings.Contains(view, "Hello world!!! bye") || strings.Contains(view, editPrompt) {
		t.Fatalf("preview after editing:\n%s", view)
	}
}

func TestClickedOutsideForOtherPanelIsIgnored(t *testing.T) {
	bus := pointer.NewBus(nil)
	m, _ := newPanel(t, Config{Bus: bus})
	m, _ = m.StartEditing()

	m, _ = m.Update(pointer.ClickedOutsideMsg{ID: m.ID() + 1000})
	if got := m.Mode(); got != Editing {
		t.Fatalf("mode: got %v, want %v", got, Editing)
	}
	m.Close()
}

func TestClose_ReleasesSubscription(t *testing.T) {
	bus := pointer.NewBus(nil)
	m, _ := newPanel(t, Config{Bus: bus})
	m, _ = m.StartEditing()
	if !m.Subscribed() {
		t.Fatalf("editing panel must hold a subscription")
	}

	m.Close()
	m.Close()
	if got := bus.Len(); got != 0 {
		t.Fatalf("subscriptions after close: got %d, want 0", got)
	}
}

func TestKeyboardStopIsCleanedUp(t *testing.T) {
	bus := pointer.NewBus(nil)
	m, _ := newPanel(t, Config{Bus: bus})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != Editing || bus.Len() != 1 {
		t.Fatalf("enter: mode %v, subscriptions %d", m.Mode(), bus.Len())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Mode() != Viewing || bus.Len() != 0 || m.Subscribed() {
		t.Fatalf("esc: mode %v, subscriptions %d", m.Mode(), bus.Len())
	}
}

func TestWithoutBus_ForwardedOutsidePressStopsEditing(t *testing.T) {
	m, _ := newPanel(t, Config{})
	m, _ = m.Update(press(2, 2))
	if m.Mode() != Editing {
		t.Fatalf("mode after click: got %v", m.Mode())
	}

	m, _ = m.Update(press(2, 2))
	if m.Mode() != Editing {
		t.Fatalf("press inside must keep editing")
	}

	m, _ = m.Update(press(45, 2))
	if m.Mode() != Viewing {
		t.Fatalf("mode after outside press: got %v", m.Mode())
	}
}

func TestMove_ResubscribesWithNewArea(t *testing.T) {
	bus := pointer.NewBus(nil)
	m, _ := newPanel(t, Config{Bus: bus})
	m, _ = m.StartEditing()

	m = m.SetBounds(pointer.Rect{X: 100, Y: 0, Width: 10, Height: 10})
	if got := bus.Len(); got != 1 {
		t.Fatalf("subscriptions after move: got %d, want 1", got)
	}

	msgs := drain(bus.Dispatch(press(5, 5)))
	if len(msgs) != 1 || msgs[0] != (pointer.ClickedOutsideMsg{ID: m.ID(), Session: m.session}) {
		t.Fatalf("press at old area: got %v", msgs)
	}
	m.Close()
}

func TestBlurred_IgnoresKeys(t *testing.T) {
	m, _ := newPanel(t, Config{})
	m = m.Blur()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != Viewing {
		t.Fatalf("blurred panel reacted to enter")
	}
}

func TestViewingIgnoresTyping(t *testing.T) {
	m, _ := newPanel(t, Config{})
	m = typeText(m, "zzz")
	if got := m.Value(); got != DefaultText {
		t.Fatalf("typing while viewing changed text: %q", got)
	}
}

func TestPreview_IsSanitized(t *testing.T) {
	m, _ := newPanel(t, Config{Text: "# Title\n\n<script>alert(1)</script>\n\nbody"})

	res, err := m.Preview()
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !res.Sanitized {
		t.Fatalf("script must be reported as sanitized")
	}
	view := strings.ToLower(m.View())
	if strings.Contains(view, "<script") {
		t.Fatalf("script reached the preview:\n%s", view)
	}
	if strings.Contains(strings.ToLower(res.HTML), "<script") {
		t.Fatalf("script reached the html:\n%s", res.HTML)
	}
	if !strings.Contains(view, "body") {
		t.Fatalf("preview lost the surrounding text:\n%s", view)
	}
}

func TestMode_String(t *testing.T) {
	if Viewing.String() != "viewing" || Editing.String() != "editing" {
		t.Fatalf("mode names: %q %q", Viewing, Editing)
	}
}

func TestPreview_StaysWithinBounds(t *testing.T) {
	long := "# Title\n\n" + strings.Repeat("paragraph\n\n", 40)
	m, _ := newPanel(t, Config{Text: long})

	if got := lipgloss.Height(m.View()); got != 10 {
		t.Fatalf("preview height: got %d, want 10", got)
	}

	// Every row of the preview is inside the panel: a press on the last one
	// starts editing.
	m, _ = m.Update(press(3, 9))
	if m.Mode() != Editing {
		t.Fatalf("press on the last preview row: mode %v", m.Mode())
	}
	if got := lipgloss.Height(m.View()); got != 10 {
		t.Fatalf("editing height: got %d, want 10", got)
	}
}

func TestPreview_Scrolls(t *testing.T) {
	long := "# Title\n\n" + strings.Repeat("paragraph\n\n", 40)
	m, _ := newPanel(t, Config{Text: long})

	wheel := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	m, _ = m.Update(wheel)
	if m.vp.YOffset == 0 {
		t.Fatalf("wheel inside the preview did not scroll")
	}
	if m.Mode() != Viewing {
		t.Fatalf("wheel must not start editing")
	}

	top := m.vp.YOffset
	m, _ = m.Update(tea.MouseMsg{X: 60, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.vp.YOffset != top {
		t.Fatalf("wheel outside the panel scrolled the preview")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.vp.YOffset <= top {
		t.Fatalf("page down did not scroll: offset %d", m.vp.YOffset)
	}
}

func TestStartEditing_KeepsTextUntilEdited(t *testing.T) {
	var changes []string
	m, _ := newPanel(t, Config{Text: "a\tb", OnChange: func(s string) { changes = append(changes, s) }})

	m, _ = m.StartEditing()
	m, _ = m.Update(struct{}{})
	if got := m.Value(); got != "a\tb" {
		t.Fatalf("text after a non-edit message: got %q", got)
	}
	if len(changes) != 0 {
		t.Fatalf("no edit happened, got changes %q", changes)
	}

	m = m.StopEditing()
	if got := m.Value(); got != "a\tb" {
		t.Fatalf("text after leaving edit mode: got %q", got)
	}
}

func TestEditing_ShowsLivePreview(t *testing.T) {
	m, _ := newPanel(t, Config{Text: "# Title"})
	m, _ = m.StartEditing()

	view := m.View()
	if !strings.Contains(view, editPrompt) || !strings.Contains(view, "│") {
		t.Fatalf("editing must show the editor next to the preview:\n%s", view)
	}

	m = typeText(m, " bye")
	res, err := m.Preview()
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(res.Terminal, "Title bye") {
		t.Fatalf("live preview did not follow the edit:\n%s", res.Terminal)
	}

	m = typeText(m, "\n<script>alert(1)</script>")
	res, _ = m.Preview()
	if !res.Sanitized || strings.Contains(strings.ToLower(res.Terminal), "<script") {
		t.Fatalf("live preview must be sanitized: %+v", res)
	}
	m.Close()
}

func TestEditing_NarrowPanelHasNoLivePreview(t *testing.T) {
	m, _ := newPanel(t, Config{})
	m = m.SetSize(minSplitWidth-1, 5)
	m, _ = m.StartEditing()

	if strings.Contains(m.View(), "│") {
		t.Fatalf("narrow panel must not split:\n%s", m.View())
	}
}

func TestStaleClickOutsideIsIgnored(t *testing.T) {
	bus := pointer.NewBus(nil)
	m, _ := newPanel(t, Config{Bus: bus})

	m, _ = m.StartEditing()
	stale := drain(bus.Dispatch(press(60, 3)))
	if len(stale) != 1 {
		t.Fatalf("outside press: got %v", stale)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Mode() != Editing {
		t.Fatalf("enter must start a new session")
	}

	for _, msg := range stale {
		m, _ = m.Update(msg)
	}
	if m.Mode() != Editing {
		t.Fatalf("a press from the previous session ended the current one")
	}

	for _, msg := range drain(bus.Dispatch(press(60, 3))) {
		m, _ = m.Update(msg)
	}
	if m.Mode() != Viewing {
		t.Fatalf("a press in the current session must stop editing")
	}
}

func TestKeepEmpty(t *testing.T) {
	m, _ := newPanel(t, Config{KeepEmpty: true})
	if got := m.Value(); got != "" {
		t.Fatalf("text: got %q, want empty", got)
	}

	m, _ = newPanel(t, Config{})
	if got := m.Value(); got != DefaultText {
		t.Fatalf("text: got %q, want %q", got, DefaultText)
	}
}
