package activefyne

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Entry is a widget.Entry with a channel interface. The events channel
// receives the full current text whenever the entry changes. The configure
// channel drives the entry at run time from inside Run; see Run for the
// accepted messages. All channels are optional.
//
// Event channels should be connected to application server processes instead
// of registering callbacks on the widget. They are written on the Fyne event
// goroutine, so they must always be serviced; build them with
// chanbuf.OverwriteOldest to keep a slow reader from freezing the UI.
type Entry struct {
	widget.Entry
	bridgeSet

	id        string
	configure <-chan any
	minWidth  float32
}

// NewEntry creates an Entry displaying text. configure and events may be nil
// when run-time configuration or change notification is not required.
// minWidth widens the entry's minimum size when it is greater than the
// toolkit minimum; pass 0 to keep the default.
func NewEntry(configure <-chan any, events chan<- string, text string, minWidth float32) *Entry {
	e := &Entry{
		id:        newWidgetID("entry"),
		configure: configure,
		minWidth:  minWidth,
	}
	e.ExtendBaseWidget(e)
	e.Entry.SetText(text)
	if events != nil {
		e.addTextChannel(events)
		e.Entry.OnChanged = func(s string) { e.notifyText(s) }
	}
	return e
}

// ID returns the instance id used to tag log lines for this entry.
func (e *Entry) ID() string { return e.id }

// SetConfigureChannel replaces the configure channel set at construction.
// It is not synchronized against a running configure loop; replace the
// channel before Run starts.
func (e *Entry) SetConfigureChannel(configure <-chan any) {
	e.configure = configure
}

// MinSize respects the minimum width given at construction.
func (e *Entry) MinSize() fyne.Size {
	size := e.Entry.MinSize()
	if e.minWidth > size.Width {
		size.Width = e.minWidth
	}
	return size
}

// Run is the configure loop of this entry. It returns immediately when no
// configure channel is bound. Otherwise it blocks reading the channel and
// applies each message in order, returning only when the channel is closed.
// Run must be called from its own goroutine, not the Fyne event goroutine.
//
// Accepted messages, classified in this order:
//
//	string       replace the displayed text
//	bool         true enables the entry, false disables it
//	EntryConfig  invoke Configure with this entry
//	other        append the fmt.Sprint form to the displayed text
//
// Boolean-like values of a named bool type are ignored entirely.
func (e *Entry) Run() {
	if e.configure == nil {
		return
	}
	log.Printf("active entry %s: configure loop started", e.id)
	for msg := range e.configure {
		e.applyConfig(msg)
	}
	log.Printf("active entry %s: configure channel closed", e.id)
}

func (e *Entry) applyConfig(msg any) {
	switch m := msg.(type) {
	case string:
		fyne.DoAndWait(func() { e.SetText(m) })
	case bool:
		fyne.DoAndWait(func() {
			if m {
				e.Enable()
			} else {
				e.Disable()
			}
		})
	case EntryConfig:
		fyne.DoAndWait(func() { m.Configure(e) })
	default:
		if isNamedBool(msg) {
			return
		}
		fyne.DoAndWait(func() { e.SetText(e.Text + fmt.Sprint(m)) })
	}
}

// FocusGained forwards the focus change to registered focus channels.
func (e *Entry) FocusGained() {
	e.Entry.FocusGained()
	e.notifyFocus(FocusEvent{Gained: true})
}

// FocusLost forwards the focus change to registered focus channels.
func (e *Entry) FocusLost() {
	e.Entry.FocusLost()
	e.notifyFocus(FocusEvent{Gained: false})
}

// TypedKey forwards the key press to registered key channels.
func (e *Entry) TypedKey(ev *fyne.KeyEvent) {
	e.Entry.TypedKey(ev)
	e.notifyKey(KeyEvent{Kind: KeyTyped, Name: ev.Name})
}

// TypedRune forwards the typed character to registered key channels.
func (e *Entry) TypedRune(r rune) {
	e.Entry.TypedRune(r)
	e.notifyKey(KeyEvent{Kind: RuneTyped, Rune: r})
}

// KeyDown forwards the key transition to registered key channels.
func (e *Entry) KeyDown(ev *fyne.KeyEvent) {
	e.Entry.KeyDown(ev)
	e.notifyKey(KeyEvent{Kind: KeyPressed, Name: ev.Name})
}

// KeyUp forwards the key transition to registered key channels.
func (e *Entry) KeyUp(ev *fyne.KeyEvent) {
	e.Entry.KeyUp(ev)
	e.notifyKey(KeyEvent{Kind: KeyReleased, Name: ev.Name})
}

// MouseDown forwards the button press to registered mouse channels.
func (e *Entry) MouseDown(ev *desktop.MouseEvent) {
	e.Entry.MouseDown(ev)
	e.notifyMouse(MouseEvent{Kind: MousePressed, Position: ev.Position, Button: ev.Button, Modifier: ev.Modifier})
}

// MouseUp forwards the button release to registered mouse channels.
func (e *Entry) MouseUp(ev *desktop.MouseEvent) {
	e.Entry.MouseUp(ev)
	e.notifyMouse(MouseEvent{Kind: MouseReleased, Position: ev.Position, Button: ev.Button, Modifier: ev.Modifier})
}

// MouseIn forwards pointer entry to registered mouse-motion channels.
func (e *Entry) MouseIn(ev *desktop.MouseEvent) {
	if h, ok := any(&e.Entry).(desktop.Hoverable); ok {
		h.MouseIn(ev)
	}
	e.notifyMouseMotion(MouseEvent{Kind: MouseEntered, Position: ev.Position})
}

// MouseMoved forwards pointer motion to registered mouse-motion channels.
func (e *Entry) MouseMoved(ev *desktop.MouseEvent) {
	if h, ok := any(&e.Entry).(desktop.Hoverable); ok {
		h.MouseMoved(ev)
	}
	e.notifyMouseMotion(MouseEvent{Kind: MouseMoved, Position: ev.Position})
}

// MouseOut forwards pointer exit to registered mouse-motion channels.
func (e *Entry) MouseOut() {
	if h, ok := any(&e.Entry).(desktop.Hoverable); ok {
		h.MouseOut()
	}
	e.notifyMouseMotion(MouseEvent{Kind: MouseExited})
}

// Move forwards the position change to registered component channels.
func (e *Entry) Move(pos fyne.Position) {
	moved := pos != e.Position()
	e.Entry.Move(pos)
	if moved {
		e.notifyComponent(ComponentEvent{Kind: ComponentMoved, Position: pos, Size: e.Size()})
	}
}

// Resize forwards the size change to registered component channels.
func (e *Entry) Resize(size fyne.Size) {
	resized := size != e.Size()
	e.Entry.Resize(size)
	if resized {
		e.notifyComponent(ComponentEvent{Kind: ComponentResized, Position: e.Position(), Size: size})
	}
}

// Show forwards the visibility change to registered component channels.
func (e *Entry) Show() {
	shown := !e.Visible()
	e.Entry.Show()
	if shown {
		e.notifyComponent(ComponentEvent{Kind: ComponentShown, Position: e.Position(), Size: e.Size()})
	}
}

// Hide forwards the visibility change to registered component channels.
func (e *Entry) Hide() {
	hidden := e.Visible()
	e.Entry.Hide()
	if hidden {
		e.notifyComponent(ComponentEvent{Kind: ComponentHidden, Position: e.Position(), Size: e.Size()})
	}
}
