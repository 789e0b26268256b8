package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ponto-backend/internal/platform/db"
)

// DiskStorage writes uploads to a local directory that the server exposes
// under /uploads/. Development backend; production points at a bucket.
type DiskStorage struct {
	dir        string
	publicBase string
}

func NewDiskStorage(cfg db.DiskStorageConfig) (*DiskStorage, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	base := cfg.PublicBase
	if base == "" {
		base = "/uploads"
	}
	return &DiskStorage{dir: dir, publicBase: strings.TrimRight(base, "/")}, nil
}

// Dir is the directory to mount as a static route.
func (s *DiskStorage) Dir() string { return s.dir }

func (s *DiskStorage) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.publicBase + "/" + filepath.Base(name), nil
}
