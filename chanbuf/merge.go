package chanbuf

import "sync"

// Merge combines several event streams into one channel, so a single
// consumer process can service the events of many widgets. Every value from
// every input is forwarded; the returned channel is closed after all inputs
// are closed.
func Merge[T any](ins ...<-chan T) <-chan T {
	out := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(ins))
	for _, in := range ins {
		go func() {
			defer wg.Done()
			for v := range in {
				out <- v
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
