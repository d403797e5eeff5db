package chanbuf

import (
	"testing"
	"time"
)

// collect reads the read end to exhaustion after the write end is closed.
func collect[T any](t *testing.T, out <-chan T) []T {
	t.Helper()

	var got []T
	timeout := time.After(5 * time.Second)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return got
			}
			got = append(got, v)
		case <-timeout:
			t.Fatalf("timed out draining channel, got %d values", len(got))
		}
	}
}

func TestOverwriteOldest_KeepsNewestValues(t *testing.T) {
	in, out := OverwriteOldest[int](3)

	for i := 1; i <= 5; i++ {
		in <- i
	}
	close(in)

	got := collect(t, out)
	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected value %d at index %d, got %d", want[i], i, got[i])
		}
	}
}

func TestOverwriteLatest_KeepsOldestValues(t *testing.T) {
	in, out := OverwriteLatest[int](3)

	for i := 1; i <= 5; i++ {
		in <- i
	}
	close(in)

	got := collect(t, out)
	want := []int{1, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("Expected %d values, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected value %d at index %d, got %d", want[i], i, got[i])
		}
	}
}

func TestOverwriteOldest_WriterNeverBlocks(t *testing.T) {
	in, out := OverwriteOldest[int](1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Nobody is reading while these are written.
		for i := 0; i < 1000; i++ {
			in <- i
		}
		close(in)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("writer blocked on a full overwrite-oldest channel")
	}

	got := collect(t, out)
	if len(got) != 1 || got[0] != 999 {
		t.Errorf("Expected only the final value 999, got %v", got)
	}
}

func TestInfinite_PreservesEverythingInOrder(t *testing.T) {
	in, out := Infinite[int]()

	const n = 1000
	for i := 0; i < n; i++ {
		in <- i
	}
	close(in)

	got := collect(t, out)
	if len(got) != n {
		t.Fatalf("Expected %d values, got %d", n, len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("Expected value %d at index %d, got %d", i, i, v)
		}
	}
}

func TestOverwriteOldest_ForwardsWhileReading(t *testing.T) {
	in, out := OverwriteOldest[string](4)

	in <- "hello"
	select {
	case v := <-out:
		if v != "hello" {
			t.Errorf("Expected 'hello', got '%s'", v)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("value was not forwarded to the read end")
	}
	close(in)

	if rest := collect(t, out); len(rest) != 0 {
		t.Errorf("Expected no further values, got %v", rest)
	}
}

func TestOverwriteOldest_PanicsOnBadCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for capacity 0")
		}
	}()
	OverwriteOldest[int](0)
}
