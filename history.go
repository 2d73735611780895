package forge

import "sync"

// History is the append-only session record of completed flows.
// Concurrent flows may append; records are never mutated in place.
type History struct {
	mu      sync.Mutex
	records []TransactionRecord
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(r TransactionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
}

// Records returns a copy, ordered by completion time.
func (h *History) Records() []TransactionRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]TransactionRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}
