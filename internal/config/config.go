// Package config loads and validates the YAML configuration of bookindex.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/alnah/go-bookindex/internal/dateutil"
	"github.com/alnah/go-bookindex/internal/fileutil"
	"github.com/alnah/go-bookindex/internal/markup"
	"github.com/alnah/go-bookindex/internal/yamlutil"
)

// AppName names the per-user configuration directory.
const AppName = "go-bookindex"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxFileNameLength    = 255
	MaxPathLength        = 4096
	MaxStyleLength       = 4096 // name or path
	MaxColorLength       = 40   // "#b7e1cd", "rgb(183,225,205)"
	MaxDateLength        = 60   // "auto:MMMM D, YYYY" or a literal date
	MaxTextLength        = 500
	MaxPageSizeLength    = 10
	MaxOrientationLength = 10
)

// Config holds all configuration for index generation.
type Config struct {
	Index      IndexConfig    `yaml:"index"`
	Output     OutputConfig   `yaml:"output"`
	BookColors map[int]string `yaml:"bookColors"` // book number -> CSS color
	Style      string         `yaml:"style"`      // embedded style name or CSS file path
	Assets     AssetsConfig   `yaml:"assets"`
	Page       PageConfig     `yaml:"page"`
	Footer     FooterConfig   `yaml:"footer"`
}

// IndexConfig mirrors the build flags.
type IndexConfig struct {
	Title       string `yaml:"title"`
	Lang        string `yaml:"lang"`
	TSV         bool   `yaml:"tsv"`
	ColorByBook bool   `yaml:"colorByBook"`
	PageBreaks  bool   `yaml:"pageBreaks"`
	Duplicates  bool   `yaml:"duplicates"`
	Report      bool   `yaml:"report"`
}

// OutputConfig names where documents are written. Empty values use the
// defaults of the CLI.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	Index      string `yaml:"index"`      // default "index.html"
	Duplicates string `yaml:"duplicates"` // default "duplicates.html"
	Report     string `yaml:"report"`     // default "report.html"
	PDF        bool   `yaml:"pdf"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, 0 = default
}

// FooterConfig defines the PDF page footer.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right"
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"` // literal, "auto" or "auto:FORMAT"
	Text           string `yaml:"text"`
}

// Validate checks field lengths and value syntax. Called by LoadConfig;
// exported for callers that build a Config in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("index.title", c.Index.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("index.lang", c.Index.Lang, MaxPageSizeLength); err != nil {
		return err
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFileName("output.index", c.Output.Index); err != nil {
		return err
	}
	if err := validateFileName("output.duplicates", c.Output.Duplicates); err != nil {
		return err
	}
	if err := validateFileName("output.report", c.Output.Report); err != nil {
		return err
	}

	for book, color := range c.BookColors {
		field := fmt.Sprintf("bookColors.%d", book)
		if book < 0 {
			return fmt.Errorf("%w: %s: book number must not be negative", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field, color, MaxColorLength); err != nil {
			return err
		}
		if !markup.ValidColor(color) {
			return fmt.Errorf("%w: %s: %q is not a CSS color", ErrInvalidValue, field, color)
		}
	}

	if err := validateFieldLength("style", c.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := c.Page.validate(); err != nil {
		return err
	}
	return c.Footer.validate()
}

func (p PageConfig) validate() error {
	if err := validateFieldLength("page.size", p.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", p.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if p.Size != "" {
		switch strings.ToLower(p.Size) {
		case "letter", "a4", "legal":
		default:
			return fmt.Errorf("%w: page.size %q (must be letter, a4, or legal)", ErrInvalidValue, p.Size)
		}
	}
	if p.Orientation != "" {
		switch strings.ToLower(p.Orientation) {
		case "portrait", "landscape":
		default:
			return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, p.Orientation)
		}
	}
	if p.Margin < 0 {
		return fmt.Errorf("%w: page.margin must not be negative, got %.2f", ErrInvalidValue, p.Margin)
	}
	return nil
}

func (f FooterConfig) validate() error {
	if err := validateFieldLength("footer.date", f.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.text", f.Text, MaxTextLength); err != nil {
		return err
	}
	if f.Position != "" {
		switch strings.ToLower(f.Position) {
		case "left", "center", "right":
		default:
			return fmt.Errorf("%w: footer.position %q (must be left, center, or right)", ErrInvalidValue, f.Position)
		}
	}
	if _, err := dateutil.ResolveDate(f.Date, time.Time{}); err != nil {
		return fmt.Errorf("footer.date: %w", err)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateFileName requires a bare file name: output names are joined
// with output.dir and must not escape it.
func validateFileName(fieldName, value string) error {
	if err := validateFieldLength(fieldName, value, MaxFileNameLength); err != nil {
		return err
	}
	if fileutil.IsFilePath(value) || value == "." || value == ".." {
		return fmt.Errorf("%w: %s %q must be a file name, not a path", ErrInvalidValue, fieldName, value)
	}
	return nil
}

// DefaultConfig returns a configuration with every option off.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator it is read as a file; otherwise
// <name>.yaml and <name>.yml are searched in the current directory, then in
// the XDG config directory under go-bookindex/. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrNilData) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, yamlutil.Describe(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NotFoundError lists the locations searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// resolveConfigPath searches for a config file by name.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	for _, ext := range extensions {
		rel := filepath.Join(AppName, name+ext)
		if p, err := xdg.SearchConfigFile(rel); err == nil {
			return p, nil
		}
		tried = append(tried, filepath.Join(xdg.ConfigHome, rel))
	}

	return "", &NotFoundError{Name: name, Tried: tried}
}
