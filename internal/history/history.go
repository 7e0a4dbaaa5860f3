// Package history maintains the searchable list of chat summaries,
// independent of which chat is currently active. Entries are derived from
// session activity, never authored directly.
package history

import (
	"strings"
	"sync"

	"github.com/0xshariq/ai-powered-chatbot/internal/bus"
	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

// Index is the ordered summary list plus an advisory pointer to the active
// chat. It does not validate referential integrity against stored sessions;
// a summary may outlive its message log.
type Index struct {
	mu      sync.RWMutex
	entries []model.ChatSummary
	active  string
}

func NewIndex() *Index {
	return &Index{}
}

// Load replaces the list with stored summaries, preserving their order.
func (ix *Index) Load(summaries []model.ChatSummary) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries = make([]model.ChatSummary, len(summaries))
	copy(ix.entries, summaries)
}

// Upsert merges a summary idempotently: an existing entry has its fields
// replaced in place, keeping its list position; a new one is appended at the
// tail. Never a move-to-front.
func (ix *Index) Upsert(s model.ChatSummary) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for i := range ix.entries {
		if ix.entries[i].ID == s.ID {
			ix.entries[i] = s
			return
		}
	}
	ix.entries = append(ix.entries, s)
}

// Delete removes the entry for chatID and reports whether it existed. The
// index does not own "current" beyond the advisory pointer; replacing a
// deleted active session is the caller's job.
func (ix *Index) Delete(chatID string) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for i := range ix.entries {
		if ix.entries[i].ID == chatID {
			ix.entries = append(ix.entries[:i:i], ix.entries[i+1:]...)
			if ix.active == chatID {
				ix.active = ""
			}
			return true
		}
	}
	return false
}

// Search returns entries whose title or preview contains query,
// case-insensitively, preserving the original list order. An empty query
// returns everything.
func (ix *Index) Search(query string) []model.ChatSummary {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	q := strings.ToLower(query)
	out := []model.ChatSummary{}
	for _, e := range ix.entries {
		if q == "" ||
			strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Preview), q) {
			out = append(out, e)
		}
	}
	return out
}

// All returns a copy of the list in order.
func (ix *Index) All() []model.ChatSummary {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]model.ChatSummary, len(ix.entries))
	copy(out, ix.entries)
	return out
}

// SetActive updates the advisory active-chat pointer.
func (ix *Index) SetActive(chatID string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.active = chatID
}

// Active returns the advisory active-chat pointer.
func (ix *Index) Active() string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.active
}

// Prune drops summaries for which exists reports false. Orphaned summaries
// are tolerated day to day; this is the on-demand cleanup path.
func (ix *Index) Prune(exists func(chatID string) bool) int {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	kept := ix.entries[:0]
	removed := 0
	for _, e := range ix.entries {
		if exists(e.ID) {
			kept = append(kept, e)
		} else {
			removed++
		}
	}
	ix.entries = kept
	return removed
}

// Bind subscribes the index to session activity on b: chat updates upsert the
// matching summary and move the advisory pointer, selections move the pointer
// only. After every mutation the full list is handed to persist. The returned
// function removes both subscriptions.
func (ix *Index) Bind(b *bus.Bus, persist func([]model.ChatSummary)) func() {
	offUpdate := b.Subscribe(bus.EventChatUpdated, func(e bus.Event) {
		u := e.(bus.ChatUpdated)
		ix.Upsert(model.ChatSummary{
			ID:        u.ChatID,
			Title:     u.Title,
			Preview:   u.Preview,
			Timestamp: u.Timestamp,
		})
		ix.SetActive(u.ChatID)
		if persist != nil {
			persist(ix.All())
		}
	})
	offSelect := b.Subscribe(bus.EventChatSelected, func(e bus.Event) {
		ix.SetActive(e.(bus.ChatSelected).ChatID)
	})

	return func() {
		offUpdate()
		offSelect()
	}
}
