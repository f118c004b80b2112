package tokenstore

import (
	"path/filepath"
	"testing"
)

func TestBoltStoreSavesAndClearsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.db")

	store, err := openBolt(path)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer store.Close()

	token, err := store.Token()
	if err != nil || token != "" {
		t.Fatalf("expected empty token, got %q err=%v", token, err)
	}

	if err := store.SaveToken("abc123"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	token, err = store.Token()
	if err != nil || token != "abc123" {
		t.Fatalf("expected saved token, got %q err=%v", token, err)
	}

	if err := store.ClearToken(); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	token, err = store.Token()
	if err != nil || token != "" {
		t.Fatalf("expected cleared token, got %q err=%v", token, err)
	}
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")

	store, err := openBolt(path)
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	if err := store.SaveToken("persisted"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := openBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	token, err := reopened.Token()
	if err != nil || token != "persisted" {
		t.Fatalf("expected persisted token, got %q err=%v", token, err)
	}
}
