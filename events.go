package activefyne

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// ComponentEventKind identifies what happened to a widget's geometry or
// visibility.
type ComponentEventKind int

const (
	ComponentMoved ComponentEventKind = iota
	ComponentResized
	ComponentShown
	ComponentHidden
)

// String returns the kind name used in logs and the demo monitor.
func (k ComponentEventKind) String() string {
	switch k {
	case ComponentMoved:
		return "Moved"
	case ComponentResized:
		return "Resized"
	case ComponentShown:
		return "Shown"
	case ComponentHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// ComponentEvent reports a move, resize, show or hide of a widget.
// Position and Size are the values after the change.
type ComponentEvent struct {
	Kind     ComponentEventKind
	Position fyne.Position
	Size     fyne.Size
}

// FocusEvent reports keyboard focus entering (Gained true) or leaving
// (Gained false) a widget.
type FocusEvent struct {
	Gained bool
}

// KeyEventKind identifies the kind of keyboard activity.
type KeyEventKind int

const (
	// KeyTyped is a completed key press as delivered to a focused widget.
	KeyTyped KeyEventKind = iota
	// RuneTyped is a printable character as delivered to a focused widget.
	RuneTyped
	// KeyPressed and KeyReleased are the raw down/up transitions.
	KeyPressed
	KeyReleased
)

// String returns the kind name used in logs and the demo monitor.
func (k KeyEventKind) String() string {
	switch k {
	case KeyTyped:
		return "KeyTyped"
	case RuneTyped:
		return "RuneTyped"
	case KeyPressed:
		return "KeyPressed"
	case KeyReleased:
		return "KeyReleased"
	default:
		return "Unknown"
	}
}

// KeyEvent reports keyboard activity on a focused widget. Name is set for
// KeyTyped, KeyPressed and KeyReleased; Rune is set for RuneTyped.
type KeyEvent struct {
	Kind KeyEventKind
	Name fyne.KeyName
	Rune rune
}

// MouseEventKind identifies the kind of pointer activity.
type MouseEventKind int

const (
	MousePressed MouseEventKind = iota
	MouseReleased
	MouseEntered
	MouseMoved
	MouseExited
)

// String returns the kind name used in logs and the demo monitor.
func (k MouseEventKind) String() string {
	switch k {
	case MousePressed:
		return "MousePressed"
	case MouseReleased:
		return "MouseReleased"
	case MouseEntered:
		return "MouseEntered"
	case MouseMoved:
		return "MouseMoved"
	case MouseExited:
		return "MouseExited"
	default:
		return "Unknown"
	}
}

// MouseEvent reports pointer activity over a widget. Button and Modifier are
// zero for the motion kinds (MouseEntered, MouseMoved, MouseExited).
type MouseEvent struct {
	Kind     MouseEventKind
	Position fyne.Position
	Button   desktop.MouseButton
	Modifier fyne.KeyModifier
}
