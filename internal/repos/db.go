package repos

import (
	"encoding/json"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"dukastore/internal/domain"
)

// Record names. Each is one serialized JSON value in the records table.
const (
	RecProducts = "products"
	RecCart     = "cart"
	RecUser     = "currentUser"
	RecOrders   = "orders"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo catalog if no products record exists yet.
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records(
  name  TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM records WHERE name = ?`, RecProducts); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	seed := []domain.Product{
		{ID: 1, Name: "Phone", Price: 15000, Reviews: []domain.Review{}},
		{ID: 2, Name: "Laptop", Price: 45000, Reviews: []domain.Review{}},
		{ID: 3, Name: "Headphones", Price: 3000, Reviews: []domain.Review{}},
	}
	b, err := json.Marshal(seed)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO records(name,value) VALUES(?,?)`, RecProducts, string(b))
	return err
}
