package docstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps buckets as directories under a root dir and serves them
// through the app's static file route.
type DiskStore struct {
	rootDir string
	baseURL string
}

func NewDiskStore(rootDir, baseURL string) *DiskStore {
	return &DiskStore{
		rootDir: rootDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *DiskStore) fullPath(bucket, path string) (string, error) {
	// Reject traversal attempts before touching the filesystem
	clean := filepath.Clean("/" + path)
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("invalid storage path: %s", path)
	}
	return filepath.Join(s.rootDir, bucket, clean), nil
}

func (s *DiskStore) Upload(ctx context.Context, bucket, path string, r io.Reader) error {
	dstPath, err := s.fullPath(bucket, path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return err
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return err
	}
	return nil
}

func (s *DiskStore) Download(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	srcPath, err := s.fullPath(bucket, path)
	if err != nil {
		return nil, err
	}
	return os.Open(srcPath)
}

func (s *DiskStore) Delete(ctx context.Context, bucket, path string) error {
	dstPath, err := s.fullPath(bucket, path)
	if err != nil {
		return err
	}
	return os.Remove(dstPath)
}

func (s *DiskStore) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", s.baseURL, bucket, strings.TrimLeft(path, "/"))
}
