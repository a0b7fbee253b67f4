package glb

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteFile creates missing parent directories and replaces path with data.
// Bytes go to a temporary file first so an interrupted run never leaves a
// truncated asset under the final name.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "failed to create directory %q", dir)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to open %q for writing", path)
	}
	tmpName := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to write %q", path)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to sync %q", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to close %q", path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to chmod %q", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to replace %q", path)
	}
	return nil
}
