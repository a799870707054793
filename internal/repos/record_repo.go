package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// RecordRepo stores each top-level application record (products, cart,
// currentUser, orders) as one named JSON value. Owners write through on
// every mutation.
type RecordRepo struct{ db *sqlx.DB }

func NewRecordRepo(db *sqlx.DB) *RecordRepo { return &RecordRepo{db: db} }

// Get returns the serialized record and whether it exists.
func (r *RecordRepo) Get(name string) ([]byte, bool, error) {
	var value string
	err := r.db.Get(&value, `SELECT value FROM records WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *RecordRepo) Put(name string, value []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO records(name,value,updated_at) VALUES(?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, name, string(value))
	return err
}

func (r *RecordRepo) Delete(name string) error {
	_, err := r.db.Exec(`DELETE FROM records WHERE name = ?`, name)
	return err
}
