package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

//go:embed templates/*.html
var templates embed.FS

// EmbeddedLoader loads the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the embedded stylesheet styles/{name}.css.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadTemplate returns the embedded template templates/{name}.html.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// StyleNames lists the embedded styles, sorted.
func (e *EmbeddedLoader) StyleNames() []string {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".css"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
