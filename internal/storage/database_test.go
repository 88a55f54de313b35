package storage

import (
	"testing"
)

func TestNewDatabase_SchemaInitialization(t *testing.T) {
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"sessions", "confirmations"} {
		var name string
		err = db.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Fatalf("%s table does not exist: %v", table, err)
		}
	}
}

func TestConfirmations_ForeignKeyConstraint(t *testing.T) {
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()

	_, err = db.DB().Exec(`
		INSERT INTO confirmations (id, session_id, value, display, timezone, confirmed_at)
		VALUES ('c-1', 'missing-session', '2026-10-16 9:00:00', 'x', 'UTC', 0)
	`)
	if err == nil {
		t.Fatal("expected foreign key constraint violation, got nil error")
	}
}

func TestConfirmations_CascadeDelete(t *testing.T) {
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	defer db.Close()

	if _, err := db.DB().Exec(`INSERT INTO sessions (id, started_at, source) VALUES ('s-1', 0, 'test')`); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if _, err := db.DB().Exec(`
		INSERT INTO confirmations (id, session_id, value, display, timezone, confirmed_at)
		VALUES ('c-1', 's-1', '2026-10-16 9:00:00', 'x', 'UTC', 0)
	`); err != nil {
		t.Fatalf("failed to create confirmation: %v", err)
	}

	if _, err := db.DB().Exec(`DELETE FROM sessions WHERE id = 's-1'`); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	var count int
	if err := db.DB().QueryRow(`SELECT COUNT(*) FROM confirmations`).Scan(&count); err != nil {
		t.Fatalf("failed to count confirmations: %v", err)
	}
	if count != 0 {
		t.Errorf("expected confirmations to cascade, %d left", count)
	}
}
