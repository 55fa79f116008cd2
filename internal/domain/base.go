package domain

import (
	"sync"
	"time"
)

type Event interface {
	Type() string
	PublishedAt() time.Time
}

// BaseEvent carries the fields every plan event shares.
type BaseEvent struct {
	EventType string
	At        time.Time
}

func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{EventType: eventType, At: time.Now().UTC()}
}

func (e BaseEvent) Type() string {
	return e.EventType
}

func (e BaseEvent) PublishedAt() time.Time {
	return e.At
}

type NoCopy struct {
	sync.Mutex
}

type Aggregate struct {
	NoCopy
	events []Event
}

func (a *Aggregate) PopEvents() []Event {
	a.Lock()
	defer a.Unlock()
	events := a.events
	a.events = make([]Event, 0)
	return events
}

func (a *Aggregate) PushEvent(e Event) {
	a.Lock()
	defer a.Unlock()
	a.events = append(a.events, e)
}
