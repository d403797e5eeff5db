package activefyne

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Slider is a widget.Slider with a channel interface. The events channel
// receives the position, truncated to int, whenever the slider value
// changes. The configure channel drives the slider at run time from inside
// Run. All channels are optional.
type Slider struct {
	widget.Slider
	bridgeSet

	id        string
	configure <-chan any
}

// NewSlider creates a Slider covering [min, max]. configure and events may
// be nil when run-time configuration or adjustment notification is not
// required.
func NewSlider(configure <-chan any, events chan<- int, min, max float64) *Slider {
	s := &Slider{
		id:        newWidgetID("slider"),
		configure: configure,
	}
	s.Min = min
	s.Max = max
	s.Step = 1
	s.ExtendBaseWidget(s)
	if events != nil {
		s.addAdjustmentChannel(events)
		s.Slider.OnChanged = func(v float64) { s.notifyAdjustment(int(v)) }
	}
	return s
}

// ID returns the instance id used to tag log lines for this slider.
func (s *Slider) ID() string { return s.id }

// SetConfigureChannel replaces the configure channel set at construction.
// Replace the channel before Run starts; there is no synchronization with a
// running configure loop.
func (s *Slider) SetConfigureChannel(configure <-chan any) {
	s.configure = configure
}

// Run is the configure loop of this slider. It returns immediately when no
// configure channel is bound, and otherwise only when the channel is closed.
// Run must be called from its own goroutine, not the Fyne event goroutine.
//
// Accepted messages, classified in this order:
//
//	int, float64  set the slider position
//	bool          true enables the slider, false disables it
//	SliderConfig  invoke Configure with this slider
//
// Anything else is ignored.
func (s *Slider) Run() {
	if s.configure == nil {
		return
	}
	log.Printf("active slider %s: configure loop started", s.id)
	for msg := range s.configure {
		s.applyConfig(msg)
	}
	log.Printf("active slider %s: configure channel closed", s.id)
}

func (s *Slider) applyConfig(msg any) {
	switch m := msg.(type) {
	case int:
		fyne.DoAndWait(func() { s.SetValue(float64(m)) })
	case float64:
		fyne.DoAndWait(func() { s.SetValue(m) })
	case bool:
		fyne.DoAndWait(func() {
			if m {
				s.Enable()
			} else {
				s.Disable()
			}
		})
	case SliderConfig:
		fyne.DoAndWait(func() { m.Configure(s) })
	default:
		log.Printf("active slider %s: ignoring configure message %T", s.id, msg)
	}
}

// FocusGained forwards the focus change to registered focus channels.
func (s *Slider) FocusGained() {
	if f, ok := any(&s.Slider).(fyne.Focusable); ok {
		f.FocusGained()
	}
	s.notifyFocus(FocusEvent{Gained: true})
}

// FocusLost forwards the focus change to registered focus channels.
func (s *Slider) FocusLost() {
	if f, ok := any(&s.Slider).(fyne.Focusable); ok {
		f.FocusLost()
	}
	s.notifyFocus(FocusEvent{Gained: false})
}

// TypedKey forwards the key press to registered key channels.
func (s *Slider) TypedKey(ev *fyne.KeyEvent) {
	if f, ok := any(&s.Slider).(fyne.Focusable); ok {
		f.TypedKey(ev)
	}
	s.notifyKey(KeyEvent{Kind: KeyTyped, Name: ev.Name})
}

// TypedRune forwards the typed character to registered key channels.
func (s *Slider) TypedRune(r rune) {
	if f, ok := any(&s.Slider).(fyne.Focusable); ok {
		f.TypedRune(r)
	}
	s.notifyKey(KeyEvent{Kind: RuneTyped, Rune: r})
}

// MouseDown forwards the button press to registered mouse channels.
func (s *Slider) MouseDown(ev *desktop.MouseEvent) {
	if m, ok := any(&s.Slider).(desktop.Mouseable); ok {
		m.MouseDown(ev)
	}
	s.notifyMouse(MouseEvent{Kind: MousePressed, Position: ev.Position, Button: ev.Button, Modifier: ev.Modifier})
}

// MouseUp forwards the button release to registered mouse channels.
func (s *Slider) MouseUp(ev *desktop.MouseEvent) {
	if m, ok := any(&s.Slider).(desktop.Mouseable); ok {
		m.MouseUp(ev)
	}
	s.notifyMouse(MouseEvent{Kind: MouseReleased, Position: ev.Position, Button: ev.Button, Modifier: ev.Modifier})
}

// MouseIn forwards pointer entry to registered mouse-motion channels.
func (s *Slider) MouseIn(ev *desktop.MouseEvent) {
	if h, ok := any(&s.Slider).(desktop.Hoverable); ok {
		h.MouseIn(ev)
	}
	s.notifyMouseMotion(MouseEvent{Kind: MouseEntered, Position: ev.Position})
}

// MouseMoved forwards pointer motion to registered mouse-motion channels.
func (s *Slider) MouseMoved(ev *desktop.MouseEvent) {
	if h, ok := any(&s.Slider).(desktop.Hoverable); ok {
		h.MouseMoved(ev)
	}
	s.notifyMouseMotion(MouseEvent{Kind: MouseMoved, Position: ev.Position})
}

// MouseOut forwards pointer exit to registered mouse-motion channels.
func (s *Slider) MouseOut() {
	if h, ok := any(&s.Slider).(desktop.Hoverable); ok {
		h.MouseOut()
	}
	s.notifyMouseMotion(MouseEvent{Kind: MouseExited})
}

// Move forwards the position change to registered component channels.
func (s *Slider) Move(pos fyne.Position) {
	moved := pos != s.Position()
	s.Slider.Move(pos)
	if moved {
		s.notifyComponent(ComponentEvent{Kind: ComponentMoved, Position: pos, Size: s.Size()})
	}
}

// Resize forwards the size change to registered component channels.
func (s *Slider) Resize(size fyne.Size) {
	resized := size != s.Size()
	s.Slider.Resize(size)
	if resized {
		s.notifyComponent(ComponentEvent{Kind: ComponentResized, Position: s.Position(), Size: size})
	}
}

// Show forwards the visibility change to registered component channels.
func (s *Slider) Show() {
	shown := !s.Visible()
	s.Slider.Show()
	if shown {
		s.notifyComponent(ComponentEvent{Kind: ComponentShown, Position: s.Position(), Size: s.Size()})
	}
}

// Hide forwards the visibility change to registered component channels.
func (s *Slider) Hide() {
	hidden := s.Visible()
	s.Slider.Hide()
	if hidden {
		s.notifyComponent(ComponentEvent{Kind: ComponentHidden, Position: s.Position(), Size: s.Size()})
	}
}
