// Package mdpanel provides a Bubble Tea markdown panel that shows a
// sanitized preview until clicked, then an editable text area until a click
// lands outside it.
//
// Click-outside detection goes through a host-owned pointer.Bus. The panel
// holds a subscription only while editing and releases it on every way out
// of the editing mode, including Close.
package mdpanel
