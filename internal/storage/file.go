package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"vedicjivan-booking/internal/pkg/errs"
)

// FileKV stores each key as one file under a state directory. Every operation
// hits the filesystem; nothing is cached in memory, so reads always observe
// the latest write, which the token store relies on.
type FileKV struct {
	dir string
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errs.Wrap(err, "failed to create state directory")
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	// Keys like "vj_pending_premium-kundli" stay readable on disk; anything
	// path-hostile is flattened.
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(key)
	return filepath.Join(f.dir, safe)
}

func (f *FileKV) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyNotFound
		}
		return "", errs.Wrap(err, "failed to read key "+key)
	}
	return string(data), nil
}

func (f *FileKV) Set(_ context.Context, key string, value string) error {
	// Write-then-rename so a crash mid-write never leaves a torn value.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o600); err != nil {
		return errs.Wrap(err, "failed to write key "+key)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return errs.Wrap(err, "failed to commit key "+key)
	}
	return nil
}

func (f *FileKV) Delete(_ context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to delete key "+key)
	}
	return nil
}
