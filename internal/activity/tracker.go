// Package activity tracks how long channels stay occupied. A channel
// activates when its first member joins and deactivates when its last
// member leaves; the deactivation event carries the elapsed time.
//
// The tracker is pure bookkeeping: delivery of events to users is the
// caller's concern (a Notifier callback, a log line, a UI).
package activity

import (
	"sync"
	"time"
)

// EventKind classifies tracker events.
type EventKind uint8

const (
	// Activated fires when the first member enters an empty channel.
	Activated EventKind = iota
	// MemberJoined fires on every join.
	MemberJoined
	// MemberLeft fires on every leave.
	MemberLeft
	// Deactivated fires when the last member leaves; Elapsed is set.
	Deactivated
)

func (k EventKind) String() string {
	switch k {
	case Activated:
		return "activated"
	case MemberJoined:
		return "joined"
	case MemberLeft:
		return "left"
	case Deactivated:
		return "deactivated"
	}
	return "unknown"
}

// Event is one observable change in channel occupancy.
type Event struct {
	Kind    EventKind
	Channel string
	Member  string
	Elapsed time.Duration // set for Deactivated only
}

// Notifier receives events synchronously, in order, outside the
// tracker's lock is NOT guaranteed — keep implementations fast.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(ev Event) { f(ev) }

type channelState struct {
	members map[string]struct{}
	since   time.Time
}

// Tracker is a concurrency-safe occupancy tracker.
type Tracker struct {
	mu       sync.RWMutex
	channels map[string]*channelState
	notifier Notifier
	now      func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithNotifier installs an event sink.
func WithNotifier(n Notifier) Option {
	return func(t *Tracker) { t.notifier = n }
}

// WithClock overrides the time source. Tests use this.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates an empty tracker.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		channels: make(map[string]*channelState),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Join records member entering channel. Joining a channel the member
// already occupies is a no-op.
func (t *Tracker) Join(channel, member string) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.channels[channel]
	if st == nil {
		st = &channelState{members: make(map[string]struct{})}
		t.channels[channel] = st
	}
	if _, ok := st.members[member]; ok {
		return nil
	}

	var events []Event
	if len(st.members) == 0 {
		st.since = t.now()
		events = append(events, Event{Kind: Activated, Channel: channel, Member: member})
	}
	st.members[member] = struct{}{}
	events = append(events, Event{Kind: MemberJoined, Channel: channel, Member: member})

	t.emit(events)
	return events
}

// Leave records member exiting channel. Leaving a channel the member
// does not occupy is a no-op.
func (t *Tracker) Leave(channel, member string) []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.channels[channel]
	if st == nil {
		return nil
	}
	if _, ok := st.members[member]; !ok {
		return nil
	}
	delete(st.members, member)

	events := []Event{{Kind: MemberLeft, Channel: channel, Member: member}}
	if len(st.members) == 0 {
		elapsed := t.now().Sub(st.since)
		delete(t.channels, channel)
		events = append(events, Event{
			Kind:    Deactivated,
			Channel: channel,
			Member:  member,
			Elapsed: elapsed,
		})
	}

	t.emit(events)
	return events
}

// Members returns the current member count of a channel.
func (t *Tracker) Members(channel string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st := t.channels[channel]
	if st == nil {
		return 0
	}
	return len(st.members)
}

// ActiveSince returns the activation time of a channel, ok=false when
// the channel is empty.
func (t *Tracker) ActiveSince(channel string) (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st := t.channels[channel]
	if st == nil {
		return time.Time{}, false
	}
	return st.since, true
}

func (t *Tracker) emit(events []Event) {
	if t.notifier == nil {
		return
	}
	for _, ev := range events {
		t.notifier.Notify(ev)
	}
}
