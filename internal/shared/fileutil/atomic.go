package fileutil

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

// WriteAtomic replaces path with data. The content is written to a temp
// file in the same directory and renamed over path, so readers see either
// the old or the new file, never a partial one.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return oops.With("dir", dir, "context", "failed to create directory").Wrap(err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return oops.With("path", path, "context", "failed to create temp file").Wrap(err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return oops.With("path", tmpName, "context", "failed to write temp file").Wrap(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return oops.With("path", tmpName, "context", "failed to sync temp file").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return oops.With("path", tmpName).Wrap(err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return oops.With("path", tmpName).Wrap(err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return oops.With("path", path, "context", "failed to replace file").Wrap(err)
	}
	return nil
}
