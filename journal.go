// journal.go: optional SQLite-backed history of collection passes.
//
// This is purely diagnostic bookkeeping about the collector's own behavior
// -- never about tracked object state -- so losing it changes nothing about
// which objects are live; it only costs tuning history.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package charon

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Journal records one row per Collect pass to a SQLite database, for
// offline analysis of collection frequency, duration, and yield.
type Journal struct {
	db *sql.DB
}

// OpenJournal opens (creating if necessary) a SQLite database at path and
// ensures the passes table exists.
func OpenJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, NewErrJournalOpenFailed(path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS passes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at_ns INTEGER NOT NULL,
	objects_scanned INTEGER NOT NULL,
	objects_freed INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, NewErrJournalOpenFailed(path, err)
	}
	return &Journal{db: db}, nil
}

// Record appends one row describing a finished collection pass.
func (j *Journal) Record(startedAt int64, objectsScanned, objectsFreed int, duration time.Duration) error {
	_, err := j.db.Exec(
		`INSERT INTO passes (started_at_ns, objects_scanned, objects_freed, duration_ns) VALUES (?, ?, ?, ?)`,
		startedAt, objectsScanned, objectsFreed, int64(duration),
	)
	if err != nil {
		return NewErrJournalWriteFailed(err)
	}
	return nil
}

// PassRecord is one row read back from the journal.
type PassRecord struct {
	StartedAtNs    int64
	ObjectsScanned int
	ObjectsFreed   int
	DurationNs     int64
}

// Recent returns up to limit most recent passes, newest first.
func (j *Journal) Recent(limit int) ([]PassRecord, error) {
	rows, err := j.db.Query(
		`SELECT started_at_ns, objects_scanned, objects_freed, duration_ns FROM passes ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, NewErrInternal("journal.Recent", err)
	}
	defer rows.Close()

	var out []PassRecord
	for rows.Next() {
		var r PassRecord
		if err := rows.Scan(&r.StartedAtNs, &r.ObjectsScanned, &r.ObjectsFreed, &r.DurationNs); err != nil {
			return nil, NewErrInternal("journal.Recent", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}
