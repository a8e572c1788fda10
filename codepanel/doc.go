// Package codepanel provides a Bubble Tea code editor panel: an external
// editing widget with a "Format" button on top and a status line below.
//
// The panel owns a Handle to the mounted widget. The widget is the source of
// truth for the text; the panel reads it on change and on Format, and writes
// it back only when formatting.
package codepanel
