package cache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// FileCache keeps entries as files under one directory. Each file holds a
// header line with the expiry time followed by the cached bytes, so a
// cached render stays readable as an SVG document after the first line.
type FileCache struct {
	dir string
}

// NewFileCache creates dir if needed and returns a cache rooted there.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// DefaultDir returns the CLI cache directory: $XDG_CACHE_HOME/svgkit, or
// the platform user cache directory.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "svgkit"), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "svgkit"), nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

const expiresPrefix = "expires "

func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	expires, data, ok := splitEntry(raw)
	if !ok || (!expires.IsZero() && time.Now().After(expires)) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return data, true, nil
}

// splitEntry parses the header line written by Set.
func splitEntry(raw []byte) (time.Time, []byte, bool) {
	header, data, found := bytes.Cut(raw, []byte("\n"))
	if !found || !bytes.HasPrefix(header, []byte(expiresPrefix)) {
		return time.Time{}, nil, false
	}
	nanos, err := strconv.ParseInt(string(header[len(expiresPrefix):]), 10, 64)
	if err != nil {
		return time.Time{}, nil, false
	}
	if nanos == 0 {
		return time.Time{}, data, true
	}
	return time.Unix(0, nanos), data, true
}

// Set writes the entry through a temporary file and a rename, so readers
// never see a partial document. A ttl of 0 never expires.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var nanos int64
	if ttl > 0 {
		nanos = time.Now().Add(ttl).UnixNano()
	}

	var buf bytes.Buffer
	buf.Grow(len(expiresPrefix) + 20 + len(data))
	buf.WriteString(expiresPrefix)
	buf.WriteString(strconv.FormatInt(nanos, 10))
	buf.WriteByte('\n')
	buf.Write(data)

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry. The directory itself is kept.
func (c *FileCache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (c *FileCache) Close() error { return nil }

// path fans entries out over subdirectories named by the first two
// characters of the key's hash.
func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".svg")
}

var _ Cache = (*FileCache)(nil)
