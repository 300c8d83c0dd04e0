package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads user assets from a directory.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Containment checks compare resolved paths.
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadStyle loads {basePath}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.load(name, "styles", ".css", ErrStyleNotFound)
}

// LoadTemplate loads {basePath}/templates/{name}.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.load(name, "templates", ".html", ErrTemplateNotFound)
}

// load reads {basePath}/{dir}/{name}{ext}, mapping a missing file to
// notFound.
func (f *FilesystemLoader) load(name, dir, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(f.basePath, dir, name+ext)
	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// verifyPathContainment checks that filePath, with symlinks resolved,
// stays inside basePath.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file cannot be resolved; it fails on open instead.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	// The trailing separator rejects siblings such as /base/pathevil.
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
