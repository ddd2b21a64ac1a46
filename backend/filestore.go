package backend

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type fileStore struct {
	root string
}

// NewFileStore creates a Backend that keeps one file per key under root.
// Writes go through a temp file and rename, so a crash mid-write never leaves
// a half-written value behind. ListKeys returns keys in lexicographic order.
func NewFileStore(root string) Backend {
	return &fileStore{root: root}
}

// path maps a key to its file under root. Keys that would resolve outside
// the root are rejected, as are keys whose path form is not canonical
// ("a//b", "a/./b", trailing slash): Join cleans those, and accepting them
// would alias distinct keys onto one file.
func (s *fileStore) path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrBackend)
	}
	path := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: key %q escapes store root", ErrBackend, key)
	}
	if filepath.ToSlash(rel) != key {
		return "", fmt.Errorf("%w: key %q is not in canonical path form", ErrBackend, key)
	}
	return path, nil
}

func (s *fileStore) Get(_ context.Context, key string) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		return "", fmt.Errorf("%w: read %s: %v", ErrBackend, key, err)
	}
	return string(data), nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrBackend, key, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrBackend, key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrBackend, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrBackend, key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrBackend, key, err)
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: delete %s: %v", ErrBackend, key, err)
	}

	// Prune directories emptied by the delete.
	dir := filepath.Dir(path)
	for dir != s.root {
		if err := os.Remove(dir); err != nil {
			break
		}
		dir = filepath.Dir(dir)
	}

	return nil
}

func (s *fileStore) ListKeys(_ context.Context) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return fs.SkipAll
			}
			return err
		}

		// Dot-prefixed entries are internal (temp files from interrupted
		// writes); never surface them as keys.
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list keys: %v", ErrBackend, err)
	}

	sort.Strings(keys)
	return keys, nil
}
