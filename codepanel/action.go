package codepanel

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/panes/format"
)

// FormatOutcome tells what Format did when it returned no error.
type FormatOutcome int

const (
	// FormatApplied means the formatted text replaced the widget content.
	FormatApplied FormatOutcome = iota
	// FormatSkippedUnmounted means there was no widget to read from.
	FormatSkippedUnmounted
	// FormatSkippedEmpty means the widget held no text.
	FormatSkippedEmpty
	// FormatFailed accompanies a formatter error.
	FormatFailed
)

func (o FormatOutcome) String() string {
	switch o {
	case FormatApplied:
		return "applied"
	case FormatSkippedUnmounted:
		return "skipped: widget not mounted"
	case FormatSkippedEmpty:
		return "skipped: empty"
	case FormatFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Format reads the widget text, formats it with format.DefaultOptions,
// strips one trailing newline and writes the result back over the whole
// content. Formatter errors are returned as is and leave the widget
// untouched.
func (m *Model) Format() (FormatOutcome, error) {
	w, ok := m.handle.Widget()
	if !ok {
		m.log.Debug("format skipped", zap.Stringer("handle", m.handle.State()))
		return FormatSkippedUnmounted, nil
	}

	text := w.Value()
	if text == "" {
		return FormatSkippedEmpty, nil
	}

	out, err := m.cfg.Formatter.Format(text, format.DefaultOptions())
	if err != nil {
		m.log.Debug("format failed", zap.Error(err))
		return FormatFailed, err
	}

	w.SetValue(format.TrimTrailingNewline(out))
	m.warnLostLines(w)
	m.syncFromWidget()
	return FormatApplied, nil
}
