package activefyne

import "testing"

func TestBridgeSet_EachRegistrationAddsOneBridge(t *testing.T) {
	var s bridgeSet

	steps := []struct {
		name     string
		register func()
	}{
		{"component", func() { s.AddComponentEventChannel(make(chan ComponentEvent)) }},
		{"focus", func() { s.AddFocusEventChannel(make(chan FocusEvent)) }},
		{"key", func() { s.AddKeyEventChannel(make(chan KeyEvent)) }},
		{"mouse", func() { s.AddMouseEventChannel(make(chan MouseEvent)) }},
		{"mouseMotion", func() { s.AddMouseMotionEventChannel(make(chan MouseEvent)) }},
		{"text", func() { s.addTextChannel(make(chan string)) }},
		{"adjustment", func() { s.addAdjustmentChannel(make(chan int)) }},
	}

	for i, step := range steps {
		step.register()
		if got := s.bridgeCount(); got != i+1 {
			t.Errorf("Expected %d bridges after registering %s, got %d", i+1, step.name, got)
		}
	}
}

func TestBridgeSet_NotifyWithoutBridgesIsSafe(t *testing.T) {
	var s bridgeSet

	s.notifyText("ignored")
	s.notifyAdjustment(1)
	s.notifyComponent(ComponentEvent{})
	s.notifyFocus(FocusEvent{})
	s.notifyKey(KeyEvent{})
	s.notifyMouse(MouseEvent{})
	s.notifyMouseMotion(MouseEvent{})

	if got := s.bridgeCount(); got != 0 {
		t.Errorf("Expected 0 bridges, got %d", got)
	}
}
