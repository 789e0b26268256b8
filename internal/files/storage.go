// Package files stores proof-of-attendance uploads and hands back the
// public URL that gets attached to a punch.
package files

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ponto-backend/internal/platform/db"
)

// Storage is the backend contract: write the object under name, return the
// public URL it is reachable at.
type Storage interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

// NewStorage picks the backend from config.
func NewStorage(cfg db.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "", "disk":
		return NewDiskStorage(cfg.Disk)
	case "bucket":
		return NewBucketStorage(cfg.Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// sanitizeName keeps the original filename readable in the stored object
// name without letting it escape into paths or URLs.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "file"
	}
	return out
}
