package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// DefaultMonitorLines bounds the monitor backlog when no limit is given
const DefaultMonitorLines = 200

// Monitor renders the most recent bridged widget events, one line per event.
// Append may be called from any consumer goroutine; the list widget itself
// is only touched on the Fyne UI goroutine via fyne.Do. When the backlog is
// full the oldest line is dropped, mirroring the overwrite-oldest policy of
// the event channels that feed it.
type Monitor struct {
	list *widget.List

	mu    sync.Mutex
	lines []string
	max   int
}

// NewMonitor creates a monitor retaining at most maxLines lines
func NewMonitor(maxLines int) *Monitor {
	if maxLines < 1 {
		maxLines = DefaultMonitorLines
	}
	m := &Monitor{max: maxLines}
	m.list = widget.NewList(
		func() int { return m.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(m.line(id))
		},
	)
	return m
}

// Append adds one event line tagged with the id of its source widget
func (m *Monitor) Append(source, text string) {
	m.mu.Lock()
	m.lines = append(m.lines, fmt.Sprintf("%s  %s", source, text))
	if len(m.lines) > m.max {
		m.lines = m.lines[len(m.lines)-m.max:]
	}
	m.mu.Unlock()

	fyne.Do(func() {
		m.list.Refresh()
		m.list.ScrollToBottom()
	})
}

// Object returns the canvas object to place in a container
func (m *Monitor) Object() fyne.CanvasObject {
	return m.list
}

// Len reports the number of lines currently retained
func (m *Monitor) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines)
}

func (m *Monitor) line(i int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.lines) {
		return ""
	}
	return m.lines[i]
}
