// Package linklist renders a titled column of links.
package linklist

import (
	_ "embed"

	"github.com/replicante-io/docsite/frontserver/render"
)

//go:embed linklist.html
var linklistHTML string

//go:embed linklist.css
var linklistCSS string

func init() {
	render.RegisterCSS("components/linklist/linklist.css", linklistCSS)
}

// Component expects a Section.
var Component = render.Component{
	Template: linklistHTML,
}

type Link struct {
	Label string
	URL   string
}

type Section struct {
	Title string
	Links []Link
}
