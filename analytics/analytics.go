// Package analytics provides privacy-light view counting for public content
// endpoints. IP addresses are never stored raw; they are hashed with a
// per-installation salt.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// View is a single recorded page or content view.
type View struct {
	Path      string    `json:"path"`
	IPHash    string    `json:"-"`
	Timestamp time.Time `json:"timestamp"`
}

// PathCount is an aggregated view count for one path.
type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// InitSalt loads the persistent IP-hashing salt from the store, generating
// and persisting a new one on first run. Call once at startup.
func InitSalt(store *Store) (string, error) {
	s, err := store.GetSetting("hash_salt")
	if err != nil {
		return "", fmt.Errorf("read hash salt: %w", err)
	}
	if s == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return "", fmt.Errorf("generate salt: %w", err)
		}
		s = hex.EncodeToString(b)
		if err := store.SetSetting("hash_salt", s); err != nil {
			return "", fmt.Errorf("store hash salt: %w", err)
		}
	}
	return s, nil
}

// HashIP returns the salted SHA-256 hash of an IP address.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(salt + ip))
	return hex.EncodeToString(sum[:])
}
