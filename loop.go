// Copyright (c) 2026 daboross
// Licensed under the MIT License. See LICENSE file in the project root.

package conrodapp

// Handler processes one event. It runs to completion before the loop fetches
// the next event; there are no concurrent invocations.
type Handler func(ctl *Control, ev Event)

// Control lets a handler steer the loop it runs inside.
type Control struct {
	update bool
	exit   bool
}

// NeedsUpdate asks the loop to deliver an UpdateEvent promptly. Consecutive
// requests before the next update are coalesced into a single event.
func (c *Control) NeedsUpdate() {
	c.update = true
}

// Exit asks the loop to stop. The current handler invocation finishes, then
// no further events are delivered.
func (c *Control) Exit() {
	c.exit = true
}

// Source supplies pending platform events, in the order the platform
// produced them. Append is called once per loop iteration.
type Source interface {
	Append(events []Event) []Event
}

// EventLoop adapts a pull-based platform event source into per-event handler
// invocations, adding the synthetic UpdateEvent. Each Step delivers the
// source's pending platform events in order followed by at most one
// UpdateEvent, so an update is never delivered before the platform events
// that requested it, and repeated requests collapse into one delivery.
//
// The loop is single threaded and cooperative. Waking it from another
// goroutine to force a redraw is not supported.
type EventLoop struct {
	src     Source
	ctl     Control
	pending bool
	scratch []Event
}

// NewEventLoop wraps a source. An update is pre-requested so the first
// iteration renders the initial frame.
func NewEventLoop(src Source) *EventLoop {
	return &EventLoop{src: src, pending: true}
}

// Step runs one loop iteration against the handler and reports whether the
// loop is done. Once a handler calls Exit, the remaining events of the
// iteration are dropped and every later Step returns true immediately.
func (l *EventLoop) Step(h Handler) (done bool) {
	if l.ctl.exit {
		return true
	}

	l.scratch = l.src.Append(l.scratch[:0])
	for _, ev := range l.scratch {
		l.dispatch(h, ev)
		if l.ctl.exit {
			return true
		}
	}

	if l.pending {
		l.pending = false
		l.dispatch(h, UpdateEvent{})
	}
	return l.ctl.exit
}

// dispatch invokes the handler for one event and folds its update request
// into the loop's coalesced pending flag.
func (l *EventLoop) dispatch(h Handler, ev Event) {
	l.ctl.update = false
	h(&l.ctl, ev)
	if l.ctl.update {
		l.pending = true
	}
}
