package io

import (
	"bufio"
	"io"
	"os"

	"github.com/matzehuels/svgkit/pkg/errors"
)

// Write writes src to w.
func Write(w io.Writer, src io.WriterTo) error {
	bw := bufio.NewWriter(w)
	if _, err := src.WriteTo(bw); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write document")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write document")
	}
	return nil
}

// Export writes src to a file at path, replacing any existing file.
// This is a convenience wrapper around [Write] for file-based output.
func Export(path string, src io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "create %s", path)
	}
	if err := Write(f, src); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "close %s", path)
	}
	return nil
}
