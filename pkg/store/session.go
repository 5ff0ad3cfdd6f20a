package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Active view tags for the shopper-facing UI.
const (
	ViewAssistant = "assistant"
	ViewMap       = "map"
	ViewList      = "list"
	ViewCheckout  = "checkout"
)

// ListItem is one entry on the shopping list. Location metadata is filled in
// when the item resolves against the catalog; free-typed items carry none.
type ListItem struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Completed bool      `json:"completed"`
	Price     float64   `json:"price,omitempty"`
	Location  string    `json:"location,omitempty"`
	Aisle     string    `json:"aisle,omitempty"`
}

// NavigationTarget is the currently highlighted item and the computed path
// toward it. Recomputed on every successful find; superseded, never merged.
type NavigationTarget struct {
	Item        string     `json:"item"`
	SectionId   string     `json:"section_id"`
	SectionName string     `json:"section_name"`
	Aisle       string     `json:"aisle"`
	Path        []Position `json:"path"`
}

// Session is the in-memory state of one shopping trip: the list, the active
// navigation target, the selected view, and the trolley's map position.
//
// Single-writer contract: callers must hold the session lock for the whole
// read-modify-write of a request. Concurrent unlocked writes are undefined.
type Session struct {
	Id         uuid.UUID         `json:"id"`
	Items      []ListItem        `json:"items"`
	Target     *NavigationTarget `json:"target,omitempty"`
	ActiveView string            `json:"active_view"`
	Position   Position          `json:"position"`
	CreatedAt  time.Time         `json:"created_at"`

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Progress returns how many items are checked off and the list size.
func (s *Session) Progress() (completed, total int) {
	for _, item := range s.Items {
		if item.Completed {
			completed++
		}
	}
	return completed, len(s.Items)
}

// ItemById returns a pointer into the list, valid until the next mutation.
func (s *Session) ItemById(id uuid.UUID) (*ListItem, bool) {
	for i := range s.Items {
		if s.Items[i].Id == id {
			return &s.Items[i], true
		}
	}
	return nil, false
}

// RemoveItem deletes the item in place, preserving insertion order.
func (s *Session) RemoveItem(id uuid.UUID) bool {
	for i := range s.Items {
		if s.Items[i].Id == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearAfterPayment empties the list and returns the UI to its default view.
func (s *Session) ClearAfterPayment() {
	s.Items = []ListItem{}
	s.Target = nil
	s.ActiveView = ViewAssistant
}
