// Package format adapts external source printers to the fixed formatting
// options used by the code panel.
//
// JavaScript is printed by esbuild and shell scripts by mvdan.cc/sh. Parse
// failures are reported as *SyntaxError and are never recovered here.
package format
