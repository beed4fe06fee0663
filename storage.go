package clubsite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage persists named JSON documents and uploaded images. Two
// implementations exist: FSStorage for local disk and S3Storage for a remote
// object store. The implementation is chosen once at startup; callers never
// branch on the backend.
type Storage interface {
	// ReadDocument returns the raw bytes of the named document, or
	// ErrDocumentNotFound if it has never been written.
	ReadDocument(ctx context.Context, name string) ([]byte, error)

	// WriteDocument replaces the named document wholesale. There is no
	// partial write; a failed write may or may not have persisted.
	WriteDocument(ctx context.Context, name string, data []byte) error

	// UploadImage stores image bytes under the given category and filename
	// and returns the public path or URL of the stored image.
	UploadImage(ctx context.Context, category, filename string, data []byte) (string, error)
}

// FSStorage stores documents under a data directory and images under an
// uploads directory on local disk.
type FSStorage struct {
	dataDir    string
	uploadsDir string
}

// NewFSStorage creates a local-disk storage adapter. Directories are created
// lazily on first write.
func NewFSStorage(dataDir, uploadsDir string) *FSStorage {
	return &FSStorage{dataDir: dataDir, uploadsDir: uploadsDir}
}

func (s *FSStorage) ReadDocument(_ context.Context, name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}
	return b, nil
}

func (s *FSStorage) WriteDocument(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dataDir, name), data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", name, err)
	}
	return nil
}

func (s *FSStorage) UploadImage(_ context.Context, category, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.uploadsDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return "/uploads/" + category + "/" + filename, nil
}

// docLocks serializes load-mutate-write sequences per document name so two
// concurrent in-process writers cannot silently discard each other's changes.
type docLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDocLocks() *docLocks {
	return &docLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for the named document and returns its unlock func.
func (l *docLocks) lock(name string) func() {
	l.mu.Lock()
	m, ok := l.locks[name]
	if !ok {
		m = &sync.Mutex{}
		l.locks[name] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}
