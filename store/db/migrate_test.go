package db

import (
	"path/filepath"
	"testing"
)

func TestOpenIsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "minter.db")

	conn, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := conn.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	conn, err = Open(dsn)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM properties").Scan(&n); err != nil {
		t.Fatalf("properties table missing: %v", err)
	}
}
