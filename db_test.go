package forge

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordDBRoundtrip(t *testing.T) {
	db, err := Opendb(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	r := TransactionRecord{
		Signature: "5abc",
		Type:      OpCreation,
		Mint:      "So11111111111111111111111111111111111111112",
		Amount:    "100",
		Recipient: "recipient",
		Time:      time.Unix(1700000000, 0),
	}
	if err := SaveRecord(db, r); err != nil {
		t.Fatal(err)
	}

	records, err := ListRecords(db, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	got := records[0]
	if got.Signature != r.Signature || got.Type != r.Type || got.Mint != r.Mint ||
		got.Amount != r.Amount || got.Recipient != r.Recipient || !got.Time.Equal(r.Time) {
		t.Errorf("roundtrip mismatch: %+v != %+v", got, r)
	}

	// Saving the same signature again replaces, not duplicates.
	if err := SaveRecord(db, r); err != nil {
		t.Fatal(err)
	}
	records, err = ListRecords(db, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("records after replace = %d, want 1", len(records))
	}
}
