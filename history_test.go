package forge

import (
	"fmt"
	"sync"
	"testing"
)

func TestHistoryConcurrentAppend(t *testing.T) {
	h := NewHistory()

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				h.Append(TransactionRecord{
					Signature: fmt.Sprintf("%d-%d", w, i),
					Type:      OpMint,
					Amount:    "1",
				})
			}
		}(w)
	}
	wg.Wait()

	if h.Len() != writers*perWriter {
		t.Errorf("length = %d, want %d", h.Len(), writers*perWriter)
	}

	// Every record kept its fields intact.
	seen := map[string]bool{}
	for _, r := range h.Records() {
		if r.Type != OpMint || r.Amount != "1" {
			t.Fatalf("interleaved record: %+v", r)
		}
		if seen[r.Signature] {
			t.Fatalf("duplicate record %s", r.Signature)
		}
		seen[r.Signature] = true
	}
}

func TestHistoryRecordsIsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(TransactionRecord{Signature: "a"})

	records := h.Records()
	records[0].Signature = "mutated"

	if h.Records()[0].Signature != "a" {
		t.Error("Records must return a copy")
	}
}
