package hocon

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSyntaxForExtension(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected Syntax
	}{
		{"conf extension", "application.conf", SyntaxHOCON},
		{"json extension", "settings.json", SyntaxJSON},
		{"properties extension", "server.properties", SyntaxProperties},
		{"uppercase extension", "APPLICATION.CONF", SyntaxHOCON},
		{"nested path", "config/prod/application.conf", SyntaxHOCON},
		{"unknown extension", "notes.txt", SyntaxUnspecified},
		{"no extension", "Makefile", SyntaxUnspecified},
		{"empty filename", "", SyntaxUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SyntaxForExtension(tt.filename))
		})
	}
}

func TestOriginString(t *testing.T) {
	origin := NewOrigin("application.conf")
	assert.Equal(t, "application.conf", origin.String())

	atLine := origin.WithLine(12)
	assert.Equal(t, "application.conf: 12", atLine.String())
	// the original origin keeps no line
	assert.Equal(t, 0, origin.Line)
}
