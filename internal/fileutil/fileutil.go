// Package fileutil provides file and path helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TempPrefix starts the name of every temporary file created here.
const TempPrefix = "bookindex-"

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", TempPrefix+"*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// WriteFileAtomic writes data next to path and renames it into place, so
// a reader never sees a half-written document. Parent directories are
// created as needed.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+TempPrefix+"*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "course" -> false (config name)
//   - "./course.yaml" -> true
//   - "C:\books\course.yaml" -> true
//   - "sub/dir" -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSSFile reports whether s names a stylesheet file rather than an
// embedded style: a path, or any value ending in ".css".
func IsCSSFile(s string) bool {
	return IsFilePath(s) || strings.EqualFold(filepath.Ext(s), ".css")
}
