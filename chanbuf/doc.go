// Package chanbuf provides buffering policies for event channels.
//
// Active widgets write events on the Fyne event goroutine, which must never
// block for unbounded time. The constructors here return channel pairs whose
// write end never blocks past a brief hand-off: when the buffer is full the
// policy decides which element to discard instead of stalling the writer.
//
//	in, out := chanbuf.OverwriteOldest[string](16)
//	entry := activefyne.NewEntry(nil, in, "Edit Me", 0)
//	go consume(out)
//
// Slow readers miss old events; the most recent ones are always available.
package chanbuf
