package clubsite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func setupTestStorage(t *testing.T) *FSStorage {
	t.Helper()
	return NewFSStorage(t.TempDir(), t.TempDir())
}

func TestReadDocumentMissing(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.ReadDocument(context.Background(), "events.json")
	if err != ErrDocumentNotFound {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestWriteReadDocumentRoundTrip(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	want := []byte(`{"events":[],"gallery":[]}`)
	if err := s.WriteDocument(ctx, "events.json", want); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	got, err := s.ReadDocument(ctx, "events.json")
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("ReadDocument = %q, want %q", got, want)
	}
}

func TestWriteDocumentReplacesWholesale(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	if err := s.WriteDocument(ctx, "pages.json", []byte(`{"home":{}}`)); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}
	if err := s.WriteDocument(ctx, "pages.json", []byte(`{"about":{}}`)); err != nil {
		t.Fatalf("second WriteDocument failed: %v", err)
	}

	got, err := s.ReadDocument(ctx, "pages.json")
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	if string(got) != `{"about":{}}` {
		t.Errorf("ReadDocument = %q, want %q", got, `{"about":{}}`)
	}
}

func TestUploadImage(t *testing.T) {
	uploadsDir := t.TempDir()
	s := NewFSStorage(t.TempDir(), uploadsDir)

	path, err := s.UploadImage(context.Background(), "events", "123-photo.jpg", []byte("image-bytes"))
	if err != nil {
		t.Fatalf("UploadImage failed: %v", err)
	}
	if path != "/uploads/events/123-photo.jpg" {
		t.Errorf("path = %q, want %q", path, "/uploads/events/123-photo.jpg")
	}

	data, err := os.ReadFile(filepath.Join(uploadsDir, "events", "123-photo.jpg"))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("stored bytes = %q, want %q", data, "image-bytes")
	}
}
