package forms

import "slices"

// EventArgs carries no data. It is the argument of plain notifications.
type EventArgs struct{}

// LayoutEventArgs describes which control's which property triggered a
// layout pass. AffectedControl is nil for an explicit PerformLayout.
type LayoutEventArgs struct {
	AffectedControl  *Control
	AffectedProperty string
}

// ControlEventArgs names the child added to or removed from a container.
type ControlEventArgs struct {
	Control *Control
}

// InvalidateEventArgs carries the client rectangle that was invalidated.
type InvalidateEventArgs struct {
	Rect Rect
}

// EventHandler handles an event raised by sender.
type EventHandler[T any] func(sender *Control, args T)

// HandlerID identifies a registered handler for removal.
type HandlerID uint64

type registration[T any] struct {
	id HandlerID
	fn EventHandler[T]
}

// Event is an ordered list of handlers for one kind of notification.
// Handlers run in registration order. The zero value is ready to use.
type Event[T any] struct {
	handlers []registration[T]
	next     HandlerID
}

// Add registers fn and returns the id that removes it.
func (e *Event[T]) Add(fn EventHandler[T]) HandlerID {
	e.next++
	e.handlers = append(e.handlers, registration[T]{id: e.next, fn: fn})
	return e.next
}

// Remove unregisters the handler with the given id.
// Returns true if the handler was found and removed.
func (e *Event[T]) Remove(id HandlerID) bool {
	for i, r := range e.handlers {
		if r.id == id {
			e.handlers = slices.Delete(e.handlers, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of registered handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// invoke calls every handler registered at the time of the call, even when a
// handler adds or removes handlers while running.
func (e *Event[T]) invoke(sender *Control, args T) {
	if len(e.handlers) == 0 {
		return
	}
	for _, r := range slices.Clone(e.handlers) {
		r.fn(sender, args)
	}
}

// raise invokes e on behalf of c unless c is being disposed.
func raise[T any](c *Control, e *Event[T], args T) {
	if c.disposing {
		return
	}
	e.invoke(c, args)
}

// ControlEvents groups every notification a Control raises.
type ControlEvents struct {
	Layout Event[LayoutEventArgs]

	Resize            Event[EventArgs]
	SizeChanged       Event[EventArgs]
	ClientSizeChanged Event[EventArgs]
	Move              Event[EventArgs]
	LocationChanged   Event[EventArgs]

	DockChanged                  Event[EventArgs]
	PaddingChanged               Event[EventArgs]
	MarginChanged                Event[EventArgs]
	TextChanged                  Event[EventArgs]
	VisibleChanged               Event[EventArgs]
	BackgroundImageLayoutChanged Event[EventArgs]

	BackColorChanged      Event[EventArgs]
	ForeColorChanged      Event[EventArgs]
	FontChanged           Event[EventArgs]
	CursorChanged         Event[EventArgs]
	RightToLeftChanged    Event[EventArgs]
	ImeModeChanged        Event[EventArgs]
	BindingContextChanged Event[EventArgs]

	ParentChanged  Event[EventArgs]
	ControlAdded   Event[ControlEventArgs]
	ControlRemoved Event[ControlEventArgs]

	HandleCreated   Event[EventArgs]
	HandleDestroyed Event[EventArgs]
	Invalidated     Event[InvalidateEventArgs]
	Disposed        Event[EventArgs]
}

// ByName returns the events that carry plain EventArgs, keyed by field name.
// Layout, ControlAdded, ControlRemoved and Invalidated carry their own
// argument types and are left out.
func (e *ControlEvents) ByName() map[string]*Event[EventArgs] {
	return map[string]*Event[EventArgs]{
		"Resize":                       &e.Resize,
		"SizeChanged":                  &e.SizeChanged,
		"ClientSizeChanged":            &e.ClientSizeChanged,
		"Move":                         &e.Move,
		"LocationChanged":              &e.LocationChanged,
		"DockChanged":                  &e.DockChanged,
		"PaddingChanged":               &e.PaddingChanged,
		"MarginChanged":                &e.MarginChanged,
		"TextChanged":                  &e.TextChanged,
		"VisibleChanged":               &e.VisibleChanged,
		"BackgroundImageLayoutChanged": &e.BackgroundImageLayoutChanged,
		"BackColorChanged":             &e.BackColorChanged,
		"ForeColorChanged":             &e.ForeColorChanged,
		"FontChanged":                  &e.FontChanged,
		"CursorChanged":                &e.CursorChanged,
		"RightToLeftChanged":           &e.RightToLeftChanged,
		"ImeModeChanged":               &e.ImeModeChanged,
		"BindingContextChanged":        &e.BindingContextChanged,
		"ParentChanged":                &e.ParentChanged,
		"HandleCreated":                &e.HandleCreated,
		"HandleDestroyed":              &e.HandleDestroyed,
		"Disposed":                     &e.Disposed,
	}
}
