package io

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/svgkit/pkg/errors"
)

// maxSceneSize bounds how much of a scene file is read.
const maxSceneSize = 16 << 20

// Read reads all of r, up to a fixed limit. Read does not close r.
func Read(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSceneSize+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read")
	}
	if len(data) > maxSceneSize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "input larger than %d bytes", maxSceneSize)
	}
	return data, nil
}

// ReadFile reads the file at path. A missing file is reported with
// FILE_NOT_FOUND.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
