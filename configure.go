package activefyne

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// EntryConfig enables general configuration of an Entry. Any value
// implementing this interface that is sent down an Entry's configure channel
// has its Configure method invoked with the entry.
type EntryConfig interface {
	Configure(*Entry)
}

// EntryConfigFunc adapts a plain function to EntryConfig.
type EntryConfigFunc func(*Entry)

// Configure calls f(e).
func (f EntryConfigFunc) Configure(e *Entry) { f(e) }

// ButtonConfig enables general configuration of a Button via its configure
// channel.
type ButtonConfig interface {
	Configure(*Button)
}

// ButtonConfigFunc adapts a plain function to ButtonConfig.
type ButtonConfigFunc func(*Button)

// Configure calls f(b).
func (f ButtonConfigFunc) Configure(b *Button) { f(b) }

// SliderConfig enables general configuration of a Slider via its configure
// channel.
type SliderConfig interface {
	Configure(*Slider)
}

// SliderConfigFunc adapts a plain function to SliderConfig.
type SliderConfigFunc func(*Slider)

// Configure calls f(s).
func (f SliderConfigFunc) Configure(s *Slider) { f(s) }

// isNamedBool reports whether v is a boolean-like value that is not the
// plain bool type. The configure loops ignore such values instead of
// treating them as enable/disable commands or appending them as text.
func isNamedBool(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(bool); ok {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

// newWidgetID returns a short unique id used to tag log lines for a widget
// instance. UUID v7 includes a timestamp, so ids sort chronologically.
func newWidgetID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	}
	return prefix + "-" + id.String()[:8]
}
