package chanbuf

type overflowPolicy int

const (
	dropOldest overflowPolicy = iota
	dropNewest
	unbounded
)

// OverwriteOldest returns the write and read ends of a buffered channel that
// never blocks the writer: when capacity values are already buffered, the
// oldest is discarded to make room for the newest. Closing the write end
// delivers the remaining values and then closes the read end.
// Panics if capacity is less than 1.
func OverwriteOldest[T any](capacity int) (chan<- T, <-chan T) {
	if capacity < 1 {
		panic("chanbuf: OverwriteOldest capacity must be at least 1")
	}
	in := make(chan T)
	out := make(chan T)
	go pump(in, out, capacity, dropOldest)
	return in, out
}

// OverwriteLatest returns the write and read ends of a buffered channel that
// never blocks the writer: when capacity values are already buffered, the
// newest buffered value is replaced by the incoming one. Closing the write
// end delivers the remaining values and then closes the read end.
// Panics if capacity is less than 1.
func OverwriteLatest[T any](capacity int) (chan<- T, <-chan T) {
	if capacity < 1 {
		panic("chanbuf: OverwriteLatest capacity must be at least 1")
	}
	in := make(chan T)
	out := make(chan T)
	go pump(in, out, capacity, dropNewest)
	return in, out
}

// Infinite returns the write and read ends of an unbounded FIFO channel.
// The writer never blocks and no values are discarded; memory use grows
// with the backlog. Closing the write end delivers the remaining values and
// then closes the read end.
func Infinite[T any]() (chan<- T, <-chan T) {
	in := make(chan T)
	out := make(chan T)
	go pump(in, out, 0, unbounded)
	return in, out
}

// pump shuttles values from in to out through a slice buffer. The select is
// always ready to receive, so a writer only ever waits for one scheduling
// hand-off, regardless of reader speed.
func pump[T any](in <-chan T, out chan<- T, capacity int, policy overflowPolicy) {
	defer close(out)

	var buf []T
	for {
		var (
			send chan<- T
			head T
		)
		if len(buf) > 0 {
			send = out
			head = buf[0]
		}

		select {
		case v, ok := <-in:
			if !ok {
				for _, rest := range buf {
					out <- rest
				}
				return
			}
			switch policy {
			case dropOldest:
				if len(buf) == capacity {
					buf = buf[1:]
				}
				buf = append(buf, v)
			case dropNewest:
				if len(buf) == capacity {
					buf[len(buf)-1] = v
				} else {
					buf = append(buf, v)
				}
			case unbounded:
				buf = append(buf, v)
			}
		case send <- head:
			buf = buf[1:]
		}
	}
}
