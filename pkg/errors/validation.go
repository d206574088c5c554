package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates an output or input file path given on the command
// line or inside a scene.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No backslashes (Windows-style paths)
//
// Absolute paths and parent directories are allowed: the CLI writes where
// the user asks it to.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// SceneFormats maps scene file extensions to their format name.
var SceneFormats = map[string]string{
	".toml": "toml",
	".yaml": "yaml",
	".yml":  "yaml",
}

// ValidateSceneFilename checks that a scene path is usable and returns its
// format ("toml" or "yaml"), chosen by extension.
func ValidateSceneFilename(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return "", New(ErrCodeInvalidFormat, "scene filename cannot be a hidden file: %q", base)
	}

	ext := strings.ToLower(filepath.Ext(base))
	format, ok := SceneFormats[ext]
	if !ok {
		return "", New(ErrCodeInvalidFormat, "unsupported scene format %q (want .toml, .yaml or .yml)", ext)
	}
	return format, nil
}

// idRegex matches ids that can be referenced as "#id" and inside url(#id)
// without escaping.
var idRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.:-]*$`)

// ValidateID validates an element id from a scene file. The empty id is
// valid and means "no id".
func ValidateID(id string) error {
	if id == "" {
		return nil
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidScene, "id too long (max 256 characters)")
	}
	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidScene, "invalid id %q: must start with a letter or underscore", id)
	}
	return nil
}
