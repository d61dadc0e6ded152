package log

import "sync"

// Entry is one buffered log line with the metadata the overlay filters on.
type Entry struct {
	Level    Level
	Category Category
	Line     string
}

// RingBuffer holds the most recent entries for the log overlay.
type RingBuffer struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	head     int
	size     int
}

// NewRingBuffer creates a buffer with given capacity.
// Values <= 0 are normalized to 1.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &RingBuffer{
		entries:  make([]Entry, capacity),
		capacity: capacity,
	}
}

// Add appends an entry, overwriting the oldest if full.
func (r *RingBuffer) Add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = e
	r.head = (r.head + 1) % r.capacity
	if r.size < r.capacity {
		r.size++
	}
}

// Len reports how many entries are buffered.
func (r *RingBuffer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

// Last returns the last n entries, oldest first.
func (r *RingBuffer) Last(n int) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n = min(n, r.size)
	if n <= 0 {
		return nil
	}

	out := make([]Entry, n)
	start := (r.head - n + r.capacity) % r.capacity
	for i := range n {
		out[i] = r.entries[(start+i)%r.capacity]
	}
	return out
}

// Clear empties the buffer.
func (r *RingBuffer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.head = 0
	r.size = 0
}
