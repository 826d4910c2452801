package sqlite

import "database/sql"

// schema holds the SQL statements to set up the database.
// These run on startup to ensure tables exist.
// Every collection is a single row; payload is the JSON array as written by the repository.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
    key TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
