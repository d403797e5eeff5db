// Package activefyne wraps Fyne widgets with a channel interface. Widget
// events are forwarded onto Go channels instead of callbacks, and widgets are
// configured at run time by messages read from a channel inside a run loop,
// so that GUI components can be composed with ordinary goroutines the same
// way as any other channel-connected process.
//
// Event channels are written on the goroutine that dispatches the toolkit
// event. It is essential that event channels are always serviced, otherwise
// the Fyne event goroutine blocks and the GUI stops responding. The simplest
// way to guarantee this is to build event channels with
// chanbuf.OverwriteOldest: slow readers then miss old events instead of
// freezing the UI.
package activefyne
