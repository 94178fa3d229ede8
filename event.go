package gui

// EventKind identifies a class of input event an element can react to.
type EventKind uint8

const (
	EventPointerDown EventKind = iota
	EventPointerUp
	EventPointerMove
	EventScroll
	EventKeyDown
	EventKeyUp
)

// Event is an input event delivered to the tree.
type Event struct {
	Kind EventKind

	// X and Y are the pointer coordinates in viewport pixels, for
	// pointer and scroll events.
	X, Y float32

	// Delta is the scroll amount for EventScroll.
	Delta float32

	// Key is the key code for key events.
	Key rune
}

// EventResponse reports what the tree did with an event.
type EventResponse uint8

const (
	// ResponseIgnored means no element consumed the event.
	ResponseIgnored EventResponse = iota

	// ResponseCaptured means an element consumed the event; the host
	// should not process it further.
	ResponseCaptured
)

// Event offers an input event to the tree.
//
// Routing the event to a matching listener is the dispatch
// collaborator's concern and is not part of the layout core; until a
// dispatcher is attached every event is reported as ignored. The entry
// lookup is still performed so hosts get consistent behavior once
// dispatch lands.
func (t *Tree) Event(ev Event) EventResponse {
	entry, ok := t.Entry()
	if !ok {
		return ResponseIgnored
	}
	if _, ok := t.Node(entry); !ok {
		return ResponseIgnored
	}
	Logger().Debug("gui: event ignored, no dispatcher", "kind", ev.Kind)
	return ResponseIgnored
}
