package activefyne

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Button is a widget.Button with a channel interface. The events channel
// receives the current label every time the button is activated. The
// configure channel drives the button at run time from inside Run. All
// channels are optional.
type Button struct {
	widget.Button
	bridgeSet

	id        string
	configure <-chan any
}

// NewButton creates a Button with the given label. configure and events may
// be nil when run-time configuration or activation notification is not
// required.
func NewButton(configure <-chan any, events chan<- string, label string) *Button {
	b := &Button{
		id:        newWidgetID("button"),
		configure: configure,
	}
	b.Text = label
	b.ExtendBaseWidget(b)
	if events != nil {
		b.addTextChannel(events)
		b.Button.OnTapped = func() { b.notifyText(b.Text) }
	}
	return b
}

// ID returns the instance id used to tag log lines for this button.
func (b *Button) ID() string { return b.id }

// SetConfigureChannel replaces the configure channel set at construction.
// Replace the channel before Run starts; there is no synchronization with a
// running configure loop.
func (b *Button) SetConfigureChannel(configure <-chan any) {
	b.configure = configure
}

// Run is the configure loop of this button. It returns immediately when no
// configure channel is bound, and otherwise only when the channel is closed.
// Run must be called from its own goroutine, not the Fyne event goroutine.
//
// Accepted messages, classified in this order:
//
//	string        replace the label
//	bool          true enables the button, false disables it
//	ButtonConfig  invoke Configure with this button
//
// Anything else is ignored; a button has no free text to append to.
func (b *Button) Run() {
	if b.configure == nil {
		return
	}
	log.Printf("active button %s: configure loop started", b.id)
	for msg := range b.configure {
		b.applyConfig(msg)
	}
	log.Printf("active button %s: configure channel closed", b.id)
}

func (b *Button) applyConfig(msg any) {
	switch m := msg.(type) {
	case string:
		fyne.DoAndWait(func() { b.SetText(m) })
	case bool:
		fyne.DoAndWait(func() {
			if m {
				b.Enable()
			} else {
				b.Disable()
			}
		})
	case ButtonConfig:
		fyne.DoAndWait(func() { m.Configure(b) })
	default:
		log.Printf("active button %s: ignoring configure message %T", b.id, msg)
	}
}

// FocusGained forwards the focus change to registered focus channels.
func (b *Button) FocusGained() {
	b.Button.FocusGained()
	b.notifyFocus(FocusEvent{Gained: true})
}

// FocusLost forwards the focus change to registered focus channels.
func (b *Button) FocusLost() {
	b.Button.FocusLost()
	b.notifyFocus(FocusEvent{Gained: false})
}

// TypedKey forwards the key press to registered key channels.
func (b *Button) TypedKey(ev *fyne.KeyEvent) {
	b.Button.TypedKey(ev)
	b.notifyKey(KeyEvent{Kind: KeyTyped, Name: ev.Name})
}

// TypedRune forwards the typed character to registered key channels.
func (b *Button) TypedRune(r rune) {
	b.Button.TypedRune(r)
	b.notifyKey(KeyEvent{Kind: RuneTyped, Rune: r})
}

// KeyDown forwards the key transition to registered key channels.
func (b *Button) KeyDown(ev *fyne.KeyEvent) {
	if k, ok := any(&b.Button).(desktop.Keyable); ok {
		k.KeyDown(ev)
	}
	b.notifyKey(KeyEvent{Kind: KeyPressed, Name: ev.Name})
}

// KeyUp forwards the key transition to registered key channels.
func (b *Button) KeyUp(ev *fyne.KeyEvent) {
	if k, ok := any(&b.Button).(desktop.Keyable); ok {
		k.KeyUp(ev)
	}
	b.notifyKey(KeyEvent{Kind: KeyReleased, Name: ev.Name})
}

// MouseDown forwards the button press to registered mouse channels.
func (b *Button) MouseDown(ev *desktop.MouseEvent) {
	if m, ok := any(&b.Button).(desktop.Mouseable); ok {
		m.MouseDown(ev)
	}
	b.notifyMouse(MouseEvent{Kind: MousePressed, Position: ev.Position, Button: ev.Button, Modifier: ev.Modifier})
}

// MouseUp forwards the button release to registered mouse channels.
func (b *Button) MouseUp(ev *desktop.MouseEvent) {
	if m, ok := any(&b.Button).(desktop.Mouseable); ok {
		m.MouseUp(ev)
	}
	b.notifyMouse(MouseEvent{Kind: MouseReleased, Position: ev.Position, Button: ev.Button, Modifier: ev.Modifier})
}

// MouseIn forwards pointer entry to registered mouse-motion channels.
func (b *Button) MouseIn(ev *desktop.MouseEvent) {
	b.Button.MouseIn(ev)
	b.notifyMouseMotion(MouseEvent{Kind: MouseEntered, Position: ev.Position})
}

// MouseMoved forwards pointer motion to registered mouse-motion channels.
func (b *Button) MouseMoved(ev *desktop.MouseEvent) {
	b.Button.MouseMoved(ev)
	b.notifyMouseMotion(MouseEvent{Kind: MouseMoved, Position: ev.Position})
}

// MouseOut forwards pointer exit to registered mouse-motion channels.
func (b *Button) MouseOut() {
	b.Button.MouseOut()
	b.notifyMouseMotion(MouseEvent{Kind: MouseExited})
}

// Move forwards the position change to registered component channels.
func (b *Button) Move(pos fyne.Position) {
	moved := pos != b.Position()
	b.Button.Move(pos)
	if moved {
		b.notifyComponent(ComponentEvent{Kind: ComponentMoved, Position: pos, Size: b.Size()})
	}
}

// Resize forwards the size change to registered component channels.
func (b *Button) Resize(size fyne.Size) {
	resized := size != b.Size()
	b.Button.Resize(size)
	if resized {
		b.notifyComponent(ComponentEvent{Kind: ComponentResized, Position: b.Position(), Size: size})
	}
}

// Show forwards the visibility change to registered component channels.
func (b *Button) Show() {
	shown := !b.Visible()
	b.Button.Show()
	if shown {
		b.notifyComponent(ComponentEvent{Kind: ComponentShown, Position: b.Position(), Size: b.Size()})
	}
}

// Hide forwards the visibility change to registered component channels.
func (b *Button) Hide() {
	hidden := b.Visible()
	b.Button.Hide()
	if hidden {
		b.notifyComponent(ComponentEvent{Kind: ComponentHidden, Position: b.Position(), Size: b.Size()})
	}
}
