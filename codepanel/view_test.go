package codepanel

import (
	"strings"
	"testing"
)

func TestView_UnmountedShowsPlaceholder(t *testing.T) {
	m := New(Config{Style: DefaultStyle()})
	out := m.View()
	if !strings.Contains(out, "Format") {
		t.Fatalf("view lacks the button:\n%s", out)
	}
	if !strings.Contains(out, "loading editor") {
		t.Fatalf("view lacks the placeholder:\n%s", out)
	}
}

func TestView_ButtonRightAlignedAndStatus(t *testing.T) {
	m, _ := mountFake(t, Config{Style: DefaultStyle()}, "const x = 1;")
	m = m.SetSize(30, 5)

	lines := strings.Split(m.View(), "\n")
	if len(lines) < 3 {
		t.Fatalf("view lines: got %d, want at least 3", len(lines))
	}
	if want := " Format "; !strings.HasSuffix(lines[0], want) {
		t.Fatalf("toolbar: got %q, want suffix %q", lines[0], want)
	}
	if got := len(lines[0]); got != 30 {
		t.Fatalf("toolbar width: got %d, want 30", got)
	}
	status := strings.TrimRight(lines[len(lines)-1], " ")
	if status != "lines: 1  chars: 12" {
		t.Fatalf("status: got %q", status)
	}
}

func TestView_CustomLabel(t *testing.T) {
	m := New(Config{ButtonLabel: "Prettify"})
	if !strings.Contains(m.View(), "Prettify") {
		t.Fatalf("custom label not rendered")
	}
	if got := m.SetSize(40, 5).buttonRect().Width; got != len("Prettify") {
		t.Fatalf("button width: got %d", got)
	}
}

func TestButtonRect_UnplacedPanel(t *testing.T) {
	m := New(Config{})
	if r := m.buttonRect(); !r.Empty() {
		t.Fatalf("unplaced panel button rect: %+v", r)
	}
}
