package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestClientIDAt_CreatesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mktquiz", "client_id")

	first, err := clientIDAt(path)
	if err != nil {
		t.Fatalf("clientIDAt returned error: %v", err)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("generated id %q is not a UUID: %v", first, err)
	}

	second, err := clientIDAt(path)
	if err != nil {
		t.Fatalf("second clientIDAt returned error: %v", err)
	}
	if first != second {
		t.Errorf("id changed between loads: %q then %q", first, second)
	}
}

func TestClientIDAt_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_id")
	if err := os.WriteFile(path, []byte("stored-id\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	id, err := clientIDAt(path)
	if err != nil {
		t.Fatalf("clientIDAt returned error: %v", err)
	}
	if id != "stored-id" {
		t.Errorf("id = %q, want %q", id, "stored-id")
	}
}

func TestClientIDAt_EmptyFileRegenerates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client_id")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	id, err := clientIDAt(path)
	if err != nil {
		t.Fatalf("clientIDAt returned error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("regenerated id %q is not a UUID", id)
	}
}

func TestDefaultIDPath_EnvOverride(t *testing.T) {
	t.Setenv("MKTQUIZ_ID", "/tmp/custom/client_id")

	path, err := DefaultIDPath()
	if err != nil {
		t.Fatalf("DefaultIDPath returned error: %v", err)
	}
	if path != "/tmp/custom/client_id" {
		t.Errorf("path = %q, want env override", path)
	}
}
