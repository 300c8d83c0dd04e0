package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	embeddedOnly, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver(\"\") error = %v", err)
	}
	if embeddedOnly.HasCustomLoader() {
		t.Error("expected no custom loader for empty path")
	}

	custom, err := NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if !custom.HasCustomLoader() {
		t.Error("expected custom loader for valid path")
	}

	if _, err := NewAssetResolver("/nonexistent/path/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
	}
}

// ---------------------------------------------------------------------------
// TestAssetResolver_Fallback - Custom first, embedded second
// ---------------------------------------------------------------------------

func TestAssetResolver_Fallback(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "styles", "default.css", "/* custom default */")
	writeAsset(t, tmpDir, "styles", "mine.css", "/* mine */")

	resolver, err := NewAssetResolver(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name        string
		load        func() (string, error)
		wantContain string
		wantErr     error
	}{
		{"custom overrides embedded", func() (string, error) { return resolver.LoadStyle("default") }, "custom default", nil},
		{"custom only", func() (string, error) { return resolver.LoadStyle("mine") }, "mine", nil},
		{"falls back to embedded style", func() (string, error) { return resolver.LoadStyle("compact") }, ".location", nil},
		{"falls back to embedded template", func() (string, error) { return resolver.LoadTemplate("document") }, "{{.Body}}", nil},
		{"missing everywhere", func() (string, error) { return resolver.LoadStyle("nowhere") }, "", ErrStyleNotFound},
		{"invalid name is not retried", func() (string, error) { return resolver.LoadStyle("../x") }, "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("got %q, want containing %q", got, tt.wantContain)
			}
		})
	}
}

func TestAssetResolver_StyleNames(t *testing.T) {
	t.Parallel()

	resolver, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}
	if len(resolver.StyleNames()) == 0 {
		t.Error("StyleNames() returned no names")
	}
}
