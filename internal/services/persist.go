package services

import (
	"encoding/json"

	"dukastore/internal/domain"
	"dukastore/internal/repos"
)

// persist serializes v and writes it through to the named record. Owners
// call it before committing the mutation to memory, so a storage failure
// never leaves memory ahead of disk.
func persist(records *repos.RecordRepo, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &domain.PersistenceError{Record: name, Err: err}
	}
	if err := records.Put(name, b); err != nil {
		return &domain.PersistenceError{Record: name, Err: err}
	}
	return nil
}

// loadRecord unmarshals the named record into v. Absent or malformed
// records leave v untouched so callers keep their defaults.
func loadRecord(records *repos.RecordRepo, name string, v any) error {
	b, ok, err := records.Get(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		// Malformed persisted data falls back to the default value.
		return nil
	}
	return nil
}
