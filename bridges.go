package activefyne

// An event bridge forwards one category of widget events onto a single
// output channel. Bridges are immutable after construction and perform
// exactly one channel send per dispatched event, on the goroutine the
// toolkit dispatches the event from. A bridge never retries, times out or
// drops; whether a send can block is decided entirely by the channel's
// buffering policy (see package chanbuf).

type textBridge struct {
	out chan<- string
}

func (b *textBridge) textChanged(text string) {
	b.out <- text
}

type adjustmentBridge struct {
	out chan<- int
}

func (b *adjustmentBridge) valueChanged(value int) {
	b.out <- value
}

type componentBridge struct {
	out chan<- ComponentEvent
}

func (b *componentBridge) componentEvent(ev ComponentEvent) {
	b.out <- ev
}

type focusBridge struct {
	out chan<- FocusEvent
}

func (b *focusBridge) focusEvent(ev FocusEvent) {
	b.out <- ev
}

type keyBridge struct {
	out chan<- KeyEvent
}

func (b *keyBridge) keyEvent(ev KeyEvent) {
	b.out <- ev
}

type mouseBridge struct {
	out chan<- MouseEvent
}

func (b *mouseBridge) mouseEvent(ev MouseEvent) {
	b.out <- ev
}

type mouseMotionBridge struct {
	out chan<- MouseEvent
}

func (b *mouseMotionBridge) mouseMotionEvent(ev MouseEvent) {
	b.out <- ev
}

// bridgeSet holds the event bridges registered on one active widget and is
// embedded by every widget type in this package. Registration must happen
// before the widget's Run loop starts; the slices are not synchronized
// against concurrent mutation.
type bridgeSet struct {
	text        []*textBridge
	adjustment  []*adjustmentBridge
	component   []*componentBridge
	focus       []*focusBridge
	key         []*keyBridge
	mouse       []*mouseBridge
	mouseMotion []*mouseMotionBridge
}

// AddComponentEventChannel registers a channel that receives a
// ComponentEvent whenever the widget is moved, resized, shown or hidden.
// Calling it more than once fans each event out to every registered channel.
// A nil channel registers nothing.
func (s *bridgeSet) AddComponentEventChannel(ch chan<- ComponentEvent) {
	if ch == nil {
		return
	}
	s.component = append(s.component, &componentBridge{out: ch})
}

// AddFocusEventChannel registers a channel that receives a FocusEvent
// whenever keyboard focus enters or leaves the widget. Calling it more than
// once fans each event out to every registered channel. A nil channel
// registers nothing.
func (s *bridgeSet) AddFocusEventChannel(ch chan<- FocusEvent) {
	if ch == nil {
		return
	}
	s.focus = append(s.focus, &focusBridge{out: ch})
}

// AddKeyEventChannel registers a channel that receives a KeyEvent for
// keyboard activity on the focused widget. Calling it more than once fans
// each event out to every registered channel. A nil channel registers
// nothing.
func (s *bridgeSet) AddKeyEventChannel(ch chan<- KeyEvent) {
	if ch == nil {
		return
	}
	s.key = append(s.key, &keyBridge{out: ch})
}

// AddMouseEventChannel registers a channel that receives a MouseEvent for
// button presses and releases over the widget. Calling it more than once
// fans each event out to every registered channel. A nil channel registers
// nothing.
func (s *bridgeSet) AddMouseEventChannel(ch chan<- MouseEvent) {
	if ch == nil {
		return
	}
	s.mouse = append(s.mouse, &mouseBridge{out: ch})
}

// AddMouseMotionEventChannel registers a channel that receives a MouseEvent
// for pointer motion over the widget (enter, move, exit). Calling it more
// than once fans each event out to every registered channel. A nil channel
// registers nothing.
func (s *bridgeSet) AddMouseMotionEventChannel(ch chan<- MouseEvent) {
	if ch == nil {
		return
	}
	s.mouseMotion = append(s.mouseMotion, &mouseMotionBridge{out: ch})
}

// addTextChannel and addAdjustmentChannel back the constructor event
// arguments; the primary event category of a widget is wired at construction
// rather than through the Add methods.
func (s *bridgeSet) addTextChannel(ch chan<- string) {
	if ch == nil {
		return
	}
	s.text = append(s.text, &textBridge{out: ch})
}

func (s *bridgeSet) addAdjustmentChannel(ch chan<- int) {
	if ch == nil {
		return
	}
	s.adjustment = append(s.adjustment, &adjustmentBridge{out: ch})
}

func (s *bridgeSet) notifyText(text string) {
	for _, b := range s.text {
		b.textChanged(text)
	}
}

func (s *bridgeSet) notifyAdjustment(value int) {
	for _, b := range s.adjustment {
		b.valueChanged(value)
	}
}

func (s *bridgeSet) notifyComponent(ev ComponentEvent) {
	for _, b := range s.component {
		b.componentEvent(ev)
	}
}

func (s *bridgeSet) notifyFocus(ev FocusEvent) {
	for _, b := range s.focus {
		b.focusEvent(ev)
	}
}

func (s *bridgeSet) notifyKey(ev KeyEvent) {
	for _, b := range s.key {
		b.keyEvent(ev)
	}
}

func (s *bridgeSet) notifyMouse(ev MouseEvent) {
	for _, b := range s.mouse {
		b.mouseEvent(ev)
	}
}

func (s *bridgeSet) notifyMouseMotion(ev MouseEvent) {
	for _, b := range s.mouseMotion {
		b.mouseMotionEvent(ev)
	}
}

func (s *bridgeSet) bridgeCount() int {
	return len(s.text) + len(s.adjustment) + len(s.component) + len(s.focus) +
		len(s.key) + len(s.mouse) + len(s.mouseMotion)
}
