package binfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ac-tracker/internal/domain"
	apperrors "ac-tracker/internal/errors"
	"ac-tracker/internal/logging"
)

// WriteFile encodes snapshot into path. The data goes to a temporary file in
// the same directory first and is renamed over path once complete.
func WriteFile(path string, snapshot *domain.Snapshot) error {
	var buf bytes.Buffer
	buf.Grow(Size(snapshot))
	if err := Encode(&buf, snapshot); err != nil {
		return apperrors.NewIOError("encode instance", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return apperrors.NewIOError("open instance for write", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return apperrors.NewIOError("write instance", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return apperrors.NewIOError("write instance", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return apperrors.NewIOError("replace instance", path, err)
	}

	logging.Debug("instance written", "path", path, "bytes", buf.Len(),
		"groups", len(snapshot.Groups), "tasks", len(snapshot.Tasks))
	return nil
}

// ReadFile decodes the snapshot stored at path. A missing file is reported as
// not found; any other failure as an IO failure.
func ReadFile(path string) (*domain.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			notFound := apperrors.NewNotFoundError("instance file", path)
			notFound.Cause = err
			return nil, notFound
		}
		return nil, apperrors.NewIOError("open instance for read", path, err)
	}
	defer f.Close()

	snapshot, err := Decode(f)
	if err != nil {
		return nil, apperrors.NewIOError("read instance", path, fmt.Errorf("decode: %w", err))
	}

	logging.Debug("instance read", "path", path,
		"groups", len(snapshot.Groups), "tasks", len(snapshot.Tasks))
	return snapshot, nil
}
