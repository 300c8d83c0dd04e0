// Package assets provides the stylesheets and the HTML document template
// used to render index documents.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and templates (go:embed)
//	    ├── FilesystemLoader  - user assets from a directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// Built-in styles are "default" (screen and print layout for index tables),
// "compact" (dense layout for long indexes) and "report" (summary report
// tables). The "document" template wraps every generated body.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// A custom directory only needs the files it overrides.
//
// # Security
//
// Asset names are restricted to letters, digits, '-' and '_'.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
