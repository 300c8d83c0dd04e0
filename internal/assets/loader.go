package assets

import (
	"errors"
	"fmt"
	"regexp"
)

// Built-in asset names.
const (
	DefaultStyleName     = "default"
	CompactStyleName     = "compact"
	ReportStyleName      = "report"
	DocumentTemplateName = "document"
)

// AssetLoader loads stylesheets and templates by name, without extension.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName rejects names that could escape the asset directory
// or change the file extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if !assetNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// isNotFoundError reports whether err means the asset is absent, as opposed
// to invalid or unreadable.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}
