// Package blob stores binary objects (profile and ambassador images) and
// hands back publicly reachable URLs.
package blob

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store is the object-storage seam. Keys may contain a single directory
// segment ("campus_ambassadors_web/abc.webp").
type Store interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

// DiskStore keeps objects under a local directory served by the HTTP layer
// at baseURL + "/static/".
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the backing directory for static file serving.
func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Put(ctx context.Context, key string, data []byte) (string, error) {
	clean := path.Clean("/" + key)
	target := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + "/static" + clean, nil
}

func (s *DiskStore) Delete(ctx context.Context, url string) error {
	marker := "/static/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return fmt.Errorf("blob: url %q is not served by this store", url)
	}
	key := url[idx+len(marker):]
	clean := path.Clean("/" + key)
	return os.Remove(filepath.Join(s.dir, filepath.FromSlash(clean)))
}
