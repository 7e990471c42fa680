package hocon

import (
	"path/filepath"
	"strings"
)

// Syntax represents the supported configuration syntaxes
// This type is shared across all packages
type Syntax string

const (
	// SyntaxUnspecified means the syntax is not known yet; the loader guesses
	// from the filename extension and falls back to HOCON.
	SyntaxUnspecified Syntax = ""
	SyntaxHOCON       Syntax = "hocon"
	SyntaxJSON        Syntax = "json"
	SyntaxProperties  Syntax = "properties"
)

// SyntaxForExtension guesses the syntax from a filename extension.
// Returns SyntaxUnspecified when the extension is not recognized.
func SyntaxForExtension(filename string) Syntax {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".conf":
		return SyntaxHOCON
	case ".json":
		return SyntaxJSON
	case ".properties":
		return SyntaxProperties
	default:
		return SyntaxUnspecified
	}
}
