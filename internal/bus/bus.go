// Package bus provides the in-process event channel that keeps the session
// model, the history index, and the UI shell loosely coupled: none of them
// holds a direct reference to another. Subscriptions are explicit listener
// registrations on an injected Bus value, not ambient globals.
//
// Delivery is synchronous and best-effort. There is no queue and no replay: a
// subscriber registered after an event fires never sees it, and the delivery
// order between subscribers of the same event is unspecified.
package bus

import "sync"

// EventName identifies one of the broadcast channels.
type EventName string

const (
	EventChatUpdated    EventName = "chatUpdate"
	EventChatSelected   EventName = "selectChat"
	EventNewChat        EventName = "newChat"
	EventSidebarToggled EventName = "toggleSidebar"
)

// Event is implemented by every broadcast payload.
type Event interface {
	Name() EventName
}

// ChatUpdated fires after a session mutation so the history index can refresh
// its summary for that chat.
type ChatUpdated struct {
	ChatID    string `json:"chatId"`
	Title     string `json:"title"`
	Preview   string `json:"preview"`
	Timestamp string `json:"timestamp"`
}

func (ChatUpdated) Name() EventName { return EventChatUpdated }

// ChatSelected fires when a chat from the history list becomes active.
type ChatSelected struct {
	ChatID string `json:"chatId"`
}

func (ChatSelected) Name() EventName { return EventChatSelected }

// NewChat fires when a fresh session replaces the active one.
type NewChat struct{}

func (NewChat) Name() EventName { return EventNewChat }

// SidebarToggled fires when the shell's sidebar visibility flips.
type SidebarToggled struct{}

func (SidebarToggled) Name() EventName { return EventSidebarToggled }

// Handler receives a published event. Handlers run on the publisher's
// goroutine; they must not block.
type Handler func(Event)

type subscriber struct {
	id int
	fn Handler
}

// Bus is a process-wide publish/subscribe channel with named events.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[EventName][]subscriber
}

func New() *Bus {
	return &Bus{subs: make(map[EventName][]subscriber)}
}

// Subscribe registers fn for the named event and returns an unsubscribe
// function. Multiple subscribers per event are allowed.
func (b *Bus) Subscribe(name EventName, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[name] = append(b.subs[name], subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[name]
		for i, s := range list {
			if s.id == id {
				b.subs[name] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e synchronously to every current subscriber of its name.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	list := make([]subscriber, len(b.subs[e.Name()]))
	copy(list, b.subs[e.Name()])
	b.mu.RUnlock()

	for _, s := range list {
		s.fn(e)
	}
}
