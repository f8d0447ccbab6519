package eui

import "time"

// UIEventType defines the kind of event emitted by widgets.
type UIEventType int

const (
	// EventDialChanged fires whenever alpha, beta or clockwise change.
	EventDialChanged UIEventType = iota
	// EventDialGrab fires when a primary press takes the grab.
	EventDialGrab
	// EventDialRelease fires when the grab is given back.
	EventDialRelease
	// EventDialContext fires on a context-menu press.
	EventDialContext
)

func (t UIEventType) String() string {
	switch t {
	case EventDialChanged:
		return "changed"
	case EventDialGrab:
		return "grab"
	case EventDialRelease:
		return "release"
	case EventDialContext:
		return "context"
	}
	return "unknown"
}

// UIEvent describes a user interaction with a widget.
type UIEvent struct {
	Dial      *Dial
	Type      UIEventType
	Target    DialTarget
	Alpha     float64
	Beta      float64
	Clockwise bool
	// Delta is the rotation applied by a drag step, wrapped into (-π, π].
	Delta     float64
	Modifiers Modifier
	// Duration is set on EventDialRelease to the length of the drag.
	Duration time.Duration
}

// EventHandler provides both channel and callback based event delivery.
type EventHandler struct {
	Events chan UIEvent
	Handle func(UIEvent)
}

// Emit delivers the event through the channel and callback if present.
// A full channel drops the event rather than blocking the UI.
func (h *EventHandler) Emit(ev UIEvent) {
	if h == nil {
		return
	}
	if h.Events != nil {
		select {
		case h.Events <- ev:
		default:
		}
	}
	if h.Handle != nil {
		h.Handle(ev)
	}
}

// NewHandler returns a handler with a small buffered channel.
func NewHandler() *EventHandler {
	return &EventHandler{Events: make(chan UIEvent, 8)}
}
