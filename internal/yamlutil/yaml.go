// Package yamlutil wraps YAML decoding so callers do not import the YAML
// library directly.
package yamlutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to 1 MiB.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ReadFileStrict reads at most MaxInputSize+1 bytes from path and decodes
// them with UnmarshalStrict.
func ReadFileStrict(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading %s: %w", path, err)
	}
	return UnmarshalStrict(data, v)
}

// Describe renders a decoding error with the offending source lines when
// the YAML library can locate them.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	return yaml.FormatError(err, false, true)
}
