package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth     = "window_width"
	KeyWindowHeight    = "window_height"
	KeyEventBufferSize = "event_buffer_size"
	KeyVerboseEventLog = "verbose_event_log"
)

// Default values
const (
	DefaultWindowWidth  float32 = 640
	DefaultWindowHeight float32 = 480

	DefaultEventBufferSize = 16
	MinEventBufferSize     = 1
	MaxEventBufferSize     = 1024
)

// Settings manages demo application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWindowSize returns the stored window size, falling back to the defaults
func (s *Settings) GetWindowSize() fyne.Size {
	width := float32(s.app.Preferences().Float(KeyWindowWidth))
	height := float32(s.app.Preferences().Float(KeyWindowHeight))
	if width <= 0 || height <= 0 {
		return fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	}
	return fyne.NewSize(width, height)
}

// SetWindowSize stores the window size
func (s *Settings) SetWindowSize(size fyne.Size) {
	s.app.Preferences().SetFloat(KeyWindowWidth, float64(size.Width))
	s.app.Preferences().SetFloat(KeyWindowHeight, float64(size.Height))
}

// GetEventBufferSize returns the capacity used for the demo's
// overwrite-oldest event channels
func (s *Settings) GetEventBufferSize() int {
	value := s.app.Preferences().Int(KeyEventBufferSize)
	if value <= 0 {
		s.SetEventBufferSize(DefaultEventBufferSize)
		return DefaultEventBufferSize
	}
	if value > MaxEventBufferSize {
		return MaxEventBufferSize
	}
	return value
}

// SetEventBufferSize stores the event channel capacity, clamped to the
// supported range
func (s *Settings) SetEventBufferSize(size int) {
	if size < MinEventBufferSize {
		size = MinEventBufferSize
	}
	if size > MaxEventBufferSize {
		size = MaxEventBufferSize
	}
	s.app.Preferences().SetInt(KeyEventBufferSize, size)
}

// GetVerboseEventLog returns whether every bridged event is also written to
// the process log
func (s *Settings) GetVerboseEventLog() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerboseEventLog, false)
}

// SetVerboseEventLog stores the verbose logging toggle
func (s *Settings) SetVerboseEventLog(verbose bool) {
	s.app.Preferences().SetBool(KeyVerboseEventLog, verbose)
}
