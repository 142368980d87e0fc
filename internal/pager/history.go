package pager

import (
	"net/url"
	"sync"
)

// History is where navigation records the address of the page being shown.
// A browser would back this with its address bar; the terminal UI keeps it
// in memory.
type History interface {
	Current() *url.URL
	Push(u *url.URL)
}

// MemoryHistory is an in-memory History with back/forward stacks.
type MemoryHistory struct {
	mu      sync.Mutex
	back    []*url.URL
	current *url.URL
	forward []*url.URL
}

// NewMemoryHistory starts a history at start. A nil start is an empty URL.
func NewMemoryHistory(start *url.URL) *MemoryHistory {
	return &MemoryHistory{current: cloneURL(start)}
}

// Current returns a copy of the current address.
func (h *MemoryHistory) Current() *url.URL {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloneURL(h.current)
}

// Push makes u the current address and drops the forward stack.
func (h *MemoryHistory) Push(u *url.URL) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.back = append(h.back, h.current)
	h.current = cloneURL(u)
	h.forward = nil
}

// Back moves to the previous address. It reports false when there is none.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.back) == 0 {
		return false
	}
	h.forward = append(h.forward, h.current)
	h.current = h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	return true
}

// Forward re-applies an address undone by Back.
func (h *MemoryHistory) Forward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.forward) == 0 {
		return false
	}
	h.back = append(h.back, h.current)
	h.current = h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	return true
}

// Len returns the number of addresses visited, including the current one.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.back) + 1
}
