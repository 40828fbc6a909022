package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ekanadham/ClassicalSanskritDictionaries/internal/kosha"
)

// WriteDatabase writes the enriched document to a SQLite database at path.
// Existing tables are replaced. Document order is preserved through the pos
// columns.
func WriteDatabase(path string, doc *kosha.Document) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return err
	}

	return insertDocument(db, doc)
}

// createTables creates the slokas/entries/synonyms schema
func createTables(db *sql.DB) error {
	queries := []string{
		`DROP TABLE IF EXISTS synonyms`,
		`DROP TABLE IF EXISTS entries`,
		`DROP TABLE IF EXISTS slokas`,
		`CREATE TABLE slokas (
			id integer PRIMARY KEY,
			pos integer NOT NULL,
			text text NOT NULL
		)`,
		`CREATE TABLE entries (
			id integer PRIMARY KEY,
			sloka_id integer NOT NULL REFERENCES slokas(id),
			pos integer NOT NULL,
			head text NOT NULL,
			verify integer NOT NULL,
			gender text NOT NULL,
			qual text NOT NULL
		)`,
		`CREATE TABLE synonyms (
			id integer PRIMARY KEY,
			entry_id integer NOT NULL REFERENCES entries(id),
			pos integer NOT NULL,
			prati text NOT NULL,
			gender text NOT NULL
		)`,
		`CREATE INDEX ix_entries_sloka ON entries (sloka_id)`,
		`CREATE INDEX ix_synonyms_entry ON synonyms (entry_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

// insertDocument inserts all slokas, entries and synonyms in one transaction
func insertDocument(db *sql.DB, doc *kosha.Document) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, sloka := range doc.Slokas {
		res, err := tx.Exec(`INSERT INTO slokas (pos, text) VALUES (?, ?)`, i, sloka.Text)
		if err != nil {
			return fmt.Errorf("failed to insert sloka: %w", err)
		}
		slokaID, err := res.LastInsertId()
		if err != nil {
			return err
		}

		for pos, entry := range sloka.Result.Entries {
			res, err := tx.Exec(
				`INSERT INTO entries (sloka_id, pos, head, verify, gender, qual) VALUES (?, ?, ?, ?, ?, ?)`,
				slokaID, pos, entry.Head, entry.Verify, string(entry.Gender), entry.Qual)
			if err != nil {
				return fmt.Errorf("failed to insert entry: %w", err)
			}
			entryID, err := res.LastInsertId()
			if err != nil {
				return err
			}

			for spos, syn := range entry.Syns {
				if _, err := tx.Exec(
					`INSERT INTO synonyms (entry_id, pos, prati, gender) VALUES (?, ?, ?, ?)`,
					entryID, spos, syn.Stem, string(syn.Gender)); err != nil {
					return fmt.Errorf("failed to insert synonym: %w", err)
				}
			}
		}
	}

	return tx.Commit()
}
