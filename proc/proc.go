package proc

import "sync"

// Runner is a process body: Run blocks until the process terminates.
type Runner interface {
	Run()
}

// RunnerFunc adapts a plain function to Runner.
type RunnerFunc func()

// Run calls f.
func (f RunnerFunc) Run() { f() }

// Parallel runs every runner in its own goroutine and blocks until all of
// them have returned.
func Parallel(runners ...Runner) {
	Start(runners...)()
}

// Sequence runs the runners one after another on the calling goroutine.
func Sequence(runners ...Runner) {
	for _, r := range runners {
		r.Run()
	}
}

// Start launches every runner in its own goroutine and returns a function
// that blocks until all of them have returned. Use it when the calling
// goroutine is needed elsewhere, typically for a GUI main loop:
//
//	wait := proc.Start(widgets...)
//	window.ShowAndRun()
//	wait()
func Start(runners ...Runner) func() {
	var wg sync.WaitGroup
	wg.Add(len(runners))
	for _, r := range runners {
		go func() {
			defer wg.Done()
			r.Run()
		}()
	}
	return wg.Wait
}
