package errbox

import (
	_ "embed"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/replicante-io/docsite/frontserver/render"
)

//go:embed errbox.html
var errboxHTML string

//go:embed errbox.css
var errboxCSS string

func init() {
	render.RegisterCSS("components/errbox/errbox.css", errboxCSS)
}

// Component expects an error.
var Component = render.Component{
	Template: errboxHTML,
	Functions: map[string]interface{}{
		"minifyError": MinifyError,
	},
}

// MinifyError returns the innermost part of a wrapped error message as a
// capitalized sentence.
func MinifyError(err error) string {
	var parts = strings.Split(err.Error(), ": ")
	var part = parts[len(parts)-1]

	if part == "" {
		return ""
	}

	// Capitalize the first letter.
	f, sz := utf8.DecodeRuneInString(part)
	if sz > 0 {
		f = unicode.ToUpper(f)
		part = string(f) + part[sz:]
	}

	if !strings.HasSuffix(part, ".") {
		part += "."
	}

	return part
}
