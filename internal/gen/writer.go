package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// filePerm is the mode of newly created headers.
const filePerm = 0o644

// atomicHint points at the in-place fallback when the output directory
// cannot hold a temporary file.
const atomicHint = "atomic output needs a writable output directory; " +
	"set output.atomic=false (FXSCANNER_OUTPUT_ATOMIC=false) to write the file in place"

// WriteFile writes a generated header to path. The parent directory must
// already exist. With atomic set the content goes to a temporary file in the
// same directory first and is renamed into place, so a failed run never
// leaves a truncated header behind. An existing header keeps its mode.
func WriteFile(path string, content []byte, atomic bool) error {
	if !atomic {
		if err := os.WriteFile(path, content, filePerm); err != nil {
			return errors.Wrapf(err, "writing file %s", path)
		}

		return nil
	}

	if err := writeAtomic(path, content); err != nil {
		return errors.WithHint(err, atomicHint)
	}

	return nil
}

func writeAtomic(path string, content []byte) error {
	perm := os.FileMode(filePerm)
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		perm = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for %s", path)
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing file %s", tmpName)
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing file %s", tmpName)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return errors.Wrapf(err, "setting permissions on %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "renaming %s to %s", tmpName, path)
	}

	committed = true

	return nil
}

// IsUpToDate reports whether the file at path already holds content.
// A missing file is simply out of date.
func IsUpToDate(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, errors.Wrapf(err, "reading file %s", path)
	}

	return bytes.Equal(existing, content), nil
}
