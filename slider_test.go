package activefyne

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestSlider_ValueChangeSendsPosition(t *testing.T) {
	test.NewApp()

	events := make(chan int, 8)
	s := NewSlider(nil, events, 0, 100)

	s.SetValue(42)

	select {
	case got := <-events:
		if got != 42 {
			t.Errorf("Expected position 42, got %d", got)
		}
	default:
		t.Fatal("Expected one adjustment event, got none")
	}
}

func TestSlider_UnchangedValueSendsNothing(t *testing.T) {
	test.NewApp()

	events := make(chan int, 8)
	s := NewSlider(nil, events, 0, 100)

	s.SetValue(10)
	<-events
	s.SetValue(10)

	select {
	case got := <-events:
		t.Errorf("Expected no event for an unchanged value, got %d", got)
	default:
	}
}

func TestSlider_ConfigureProtocol(t *testing.T) {
	test.NewApp()

	configure := make(chan any)
	s := NewSlider(configure, nil, 0, 100)
	done := runLoop(s)

	configure <- 25
	configure <- false
	close(configure)
	waitDone(t, done)

	if s.Value != 25 {
		t.Errorf("Expected value 25, got %f", s.Value)
	}
	if !s.Disabled() {
		t.Error("Expected slider to be disabled")
	}
}

func TestSlider_ConfigureFloatAndCallback(t *testing.T) {
	test.NewApp()

	configure := make(chan any)
	s := NewSlider(configure, nil, 0, 100)
	done := runLoop(s)

	configure <- 12.0
	configure <- SliderConfigFunc(func(s *Slider) {
		s.Max = 200
	})
	close(configure)
	waitDone(t, done)

	if s.Value != 12 {
		t.Errorf("Expected value 12, got %f", s.Value)
	}
	if s.Max != 200 {
		t.Errorf("Expected max 200, got %f", s.Max)
	}
}

func TestSlider_ComponentEvents(t *testing.T) {
	test.NewApp()

	s := NewSlider(nil, nil, 0, 100)
	component := make(chan ComponentEvent, 8)
	s.AddComponentEventChannel(component)

	s.Resize(fyne.NewSize(200, 30))

	got := <-component
	if got.Kind != ComponentResized {
		t.Errorf("Expected ComponentResized, got %v", got.Kind)
	}
	if got.Size != fyne.NewSize(200, 30) {
		t.Errorf("Expected size 200x30, got %+v", got.Size)
	}
}

func TestSlider_ConfigureLoopDrivesAdjustmentChannel(t *testing.T) {
	test.NewApp()

	events := make(chan int, 8)
	configure := make(chan any)
	s := NewSlider(configure, events, 0, 100)
	done := runLoop(s)

	configure <- 70
	close(configure)
	waitDone(t, done)

	select {
	case got := <-events:
		if got != 70 {
			t.Errorf("Expected adjustment event 70, got %d", got)
		}
	default:
		t.Fatal("Expected SetValue from the configure loop to produce an event")
	}
}
