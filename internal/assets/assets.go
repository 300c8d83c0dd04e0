package assets

// defaultLoader serves the package-level helpers.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded stylesheet by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an embedded HTML template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// StyleNames lists the embedded stylesheet names.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
