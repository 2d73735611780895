package forge

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// The CLI keeps a persistent copy of completed transaction records so
// past mints survive the session. The core history stays in memory;
// this file is CLI plumbing only.

func Opendb(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			signature TEXT PRIMARY KEY,
			type TEXT,
			mint TEXT,
			amount TEXT,
			recipient TEXT,
			time INTEGER
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func SaveRecord(db *sql.DB, r TransactionRecord) error {
	_, err := db.Exec(`
		INSERT OR REPLACE INTO records (signature, type, mint, amount, recipient, time)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.Signature, string(r.Type), r.Mint, r.Amount, r.Recipient, r.Time.Unix())
	return err
}

func ListRecords(db *sql.DB, limit int) ([]TransactionRecord, error) {
	rows, err := db.Query(`
		SELECT signature, type, mint, amount, recipient, time
		FROM records ORDER BY time DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TransactionRecord
	for rows.Next() {
		var r TransactionRecord
		var typ string
		var ts int64
		if err := rows.Scan(&r.Signature, &typ, &r.Mint, &r.Amount, &r.Recipient, &ts); err != nil {
			continue
		}
		r.Type = OperationType(typ)
		r.Time = time.Unix(ts, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}
