package io

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/svgkit/pkg/errors"
)

type doc string

func (d doc) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(d))
	return int64(n), err
}

type failing struct{}

func (failing) WriteTo(io.Writer) (int64, error) { return 0, stderrors.New("boom") }

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, doc("<svg/>")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "<svg/>" {
		t.Errorf("got %q, want %q", got, "<svg/>")
	}

	err := Write(&buf, failing{})
	if !errors.Is(err, errors.ErrCodeExportFailed) {
		t.Errorf("Write error = %v, want EXPORT_FAILED", err)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")

	if err := Export(path, doc("<svg>\n</svg>")); err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg>\n</svg>" {
		t.Errorf("file = %q", data)
	}

	// overwrite
	if err := Export(path, doc("<svg/>")); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "<svg/>" {
		t.Errorf("file after overwrite = %q", data)
	}

	err = Export(filepath.Join(dir, "missing", "out.svg"), doc(""))
	if !errors.Is(err, errors.ErrCodeExportFailed) {
		t.Errorf("Export into missing dir error = %v, want EXPORT_FAILED", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte("width = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "width = 10\n" {
		t.Errorf("data = %q", data)
	}

	_, err = ReadFile(filepath.Join(dir, "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile missing error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestReadLimit(t *testing.T) {
	_, err := Read(strings.NewReader(strings.Repeat("x", maxSceneSize+1)))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Read error = %v, want INVALID_INPUT", err)
	}
}
