package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndCountViews(t *testing.T) {
	store := setupStore(t)
	now := time.Now()

	views := []View{
		{Path: "/api/content", IPHash: "h1", Timestamp: now},
		{Path: "/api/content", IPHash: "h2", Timestamp: now},
		{Path: "/api/programs", IPHash: "h1", Timestamp: now},
		{Path: "/api/content", IPHash: "h3", Timestamp: now.AddDate(0, 0, -60)},
	}
	for _, v := range views {
		if err := store.RecordView(v); err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}

	total, err := store.TotalViews(now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("TotalViews failed: %v", err)
	}
	if total != 3 {
		t.Errorf("TotalViews = %d, want 3 (old view excluded)", total)
	}

	paths, err := store.TopPaths(now.AddDate(0, 0, -30), 10)
	if err != nil {
		t.Fatalf("TopPaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("TopPaths returned %d entries, want 2", len(paths))
	}
	if paths[0].Path != "/api/content" || paths[0].Count != 2 {
		t.Errorf("top path = %+v, want /api/content with 2 views", paths[0])
	}
}

func TestTopPathsLimit(t *testing.T) {
	store := setupStore(t)
	now := time.Now()

	for _, p := range []string{"/a", "/b", "/c"} {
		if err := store.RecordView(View{Path: p, IPHash: "h", Timestamp: now}); err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}
	paths, err := store.TopPaths(now.Add(-time.Hour), 2)
	if err != nil {
		t.Fatalf("TopPaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("TopPaths returned %d entries, want limit of 2", len(paths))
	}
}

func TestInitSaltPersists(t *testing.T) {
	store := setupStore(t)

	salt, err := InitSalt(store)
	if err != nil {
		t.Fatalf("InitSalt failed: %v", err)
	}
	if len(salt) != 64 {
		t.Errorf("salt length = %d, want 64 hex chars", len(salt))
	}

	again, err := InitSalt(store)
	if err != nil {
		t.Fatalf("second InitSalt failed: %v", err)
	}
	if again != salt {
		t.Error("InitSalt should return the stored salt on subsequent calls")
	}
}

func TestHashIPStable(t *testing.T) {
	a := HashIP("203.0.113.9", "salt")
	b := HashIP("203.0.113.9", "salt")
	if a != b {
		t.Error("same IP and salt should hash identically")
	}
	if HashIP("203.0.113.9", "other") == a {
		t.Error("different salts should produce different hashes")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
}
