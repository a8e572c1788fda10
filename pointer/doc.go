// Package pointer routes terminal mouse events to panels that need to know
// about presses outside their own area.
//
// A host owns one Bus and feeds it every tea.MouseMsg before passing the
// message down its model tree. Panels subscribe while they need click-outside
// detection and release the subscription when they stop needing it.
package pointer
