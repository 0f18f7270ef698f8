package store

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes payment proofs to a flat directory, one file per
// submission named <register_no>.<ext>. It also backs the two read-side
// operations: lookup by registration number and archive-all.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Dir() string { return l.dir }

func (l *Local) Store(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := os.WriteFile(filepath.Join(l.dir, key), data, 0o644); err != nil {
		return "", err
	}
	return key, nil
}

// Find returns the path of the first stored file whose name begins with
// the registration number, in directory-listing order.
func (l *Local) Find(registerNo string) (string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), registerNo) {
			return filepath.Join(l.dir, e.Name()), nil
		}
	}
	return "", ErrNotFound
}

// ArchiveAll zips every stored proof into a single archive next to the
// upload directory, overwriting any previous archive, and returns its
// path. Concurrent callers race on the archive path; the last writer
// wins.
func (l *Local) ArchiveAll() (string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return "", err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return "", ErrEmpty
	}

	archivePath := filepath.Clean(l.dir) + ".zip"
	out, err := os.Create(archivePath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, name := range files {
		if err := l.addToArchive(zw, name); err != nil {
			zw.Close()
			return "", err
		}
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return archivePath, nil
}

func (l *Local) addToArchive(zw *zip.Writer, name string) error {
	src, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
