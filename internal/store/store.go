package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// FailedLocator is recorded in the registry when the upload itself failed.
const FailedLocator = "upload_failed"

var (
	ErrNotFound = errors.New("file not found")
	ErrEmpty    = errors.New("no payment proofs stored")
)

type Store interface {
	// Store persists the payment proof under the given key and returns a
	// retrievable locator: a filename for the local backend, a public URL
	// or share link for the cloud backends.
	Store(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var allowedExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// KeyFor derives the storage key from the registration number and the
// uploaded filename. The client-supplied extension is untrusted; anything
// outside the image allow-list is coerced to jpg.
func KeyFor(registerNo, filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExts[ext] {
		ext = "jpg"
	}
	return registerNo + "." + ext
}
