package assets

// AssetResolver tries a custom directory first and falls back to the
// embedded assets when the custom copy is absent.
type AssetResolver struct {
	custom   AssetLoader // nil without a custom directory
	embedded *EmbeddedLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath
// serves embedded assets only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a stylesheet, custom copy first.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadStyle(name)
	})
}

// LoadTemplate loads a template, custom copy first.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.loadWithFallback(func(loader AssetLoader) (string, error) {
		return loader.LoadTemplate(name)
	})
}

// StyleNames lists the built-in style names.
func (r *AssetResolver) StyleNames() []string {
	return r.embedded.StyleNames()
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// loadWithFallback only falls back on "not found"; validation and I/O
// errors from the custom directory are returned as is.
func (r *AssetResolver) loadWithFallback(loadFn func(AssetLoader) (string, error)) (string, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	content, err := loadFn(r.custom)
	if err == nil {
		return content, nil
	}
	if !isNotFoundError(err) {
		return "", err
	}
	return loadFn(r.embedded)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
