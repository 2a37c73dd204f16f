package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/amishk599/jobinsight/internal/model"
)

// SQLiteStore mirrors the enriched dataset into a SQLite table so it can be
// queried with SQL.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// enriched_jobs table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS enriched_jobs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT,
		company     TEXT,
		description TEXT,
		location    TEXT,
		salary_min  REAL,
		salary_max  REAL,
		date_posted TEXT,
		url         TEXT,
		city        TEXT,
		state       TEXT,
		salary_avg  REAL,
		skills      TEXT
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating enriched_jobs table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SaveEnriched replaces the table contents with jobs in a single transaction.
func (s *SQLiteStore) SaveEnriched(jobs []model.EnrichedJob) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin enriched save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM enriched_jobs"); err != nil {
		return fmt.Errorf("clearing enriched_jobs: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO enriched_jobs
		(title, company, description, location, salary_min, salary_max, date_posted, url, city, state, salary_avg, skills)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing enriched insert: %w", err)
	}
	defer stmt.Close()

	for _, j := range jobs {
		_, err := stmt.Exec(
			nullString(j.Title),
			nullString(j.Company),
			nullString(j.Description),
			nullString(j.Location),
			nullFloat(j.SalaryMin),
			nullFloat(j.SalaryMax),
			nullString(j.Posted),
			nullString(j.URL),
			nullString(j.City),
			nullString(j.State),
			nullFloat(j.SalaryAvg),
			strings.Join(j.Skills, ","),
		)
		if err != nil {
			return fmt.Errorf("inserting %q: %w", j.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit enriched save: %w", err)
	}
	return nil
}

// Count returns the number of rows currently stored.
func (s *SQLiteStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM enriched_jobs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting enriched jobs: %w", err)
	}
	return count, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
