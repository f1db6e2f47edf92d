package db

import (
	"path/filepath"
	"testing"

	"github.com/credstack/credstack/internal/models"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	conn, err := Open("file:" + filepath.Join(t.TempDir(), "credstack-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if !IsSQLite(conn) {
		t.Fatalf("expected sqlite dialect, got %q", DialectName(conn))
	}
	if errMigrate := Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	// migrated schema accepts a row round-trip
	user := models.User{Username: "alice", Password: "hashed", Active: true}
	if errCreate := conn.Create(&user).Error; errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}
	if user.ID == 0 {
		t.Fatalf("expected auto-assigned user id")
	}
}

func TestDialectNameNil(t *testing.T) {
	if got := DialectName(nil); got != "" {
		t.Fatalf("expected empty dialect for nil connection, got %q", got)
	}
	if IsSQLite(nil) {
		t.Fatal("nil connection must not report sqlite")
	}
}
