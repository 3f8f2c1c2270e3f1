// Package footer renders the documentation site footer: a sitemap with links
// to the main doc pages and the community, followed by the copyright notice.
package footer

import (
	_ "embed"
	"html/template"

	"github.com/replicante-io/docsite/frontserver/components/linklist"
	"github.com/replicante-io/docsite/frontserver/render"
	"github.com/replicante-io/docsite/site"
)

//go:embed footer.html
var footerHTML string

//go:embed footer.css
var footerCSS string

func init() {
	render.RegisterCSS("components/footer/footer.css", footerCSS)
}

// Component expects Props.
var Component = render.Component{
	Template: footerHTML,
	Components: map[string]render.Component{
		"linklist": linklist.Component,
	},
}

var tmpl = render.BuildPage("footer", render.Page{
	Template: `{{ template "footer" . }}`,
	Components: map[string]render.Component{
		"footer": Component,
	},
})

// Doc is a documentation page linked from the footer.
type Doc struct {
	Label string
	Name  string
}

// Docs are the documentation pages in the Docs column.
var Docs = [...]Doc{
	{"Quick Start", "quick-start"},
	{"Features", "features"},
	{"API Reference", "api"},
}

// Community are the external links in the Community column.
var Community = [...]linklist.Link{
	{Label: "GitHub Organisation", URL: "https://github.com/replicante-io"},
	{Label: "Official Website", URL: "https://www.replicante.io/"},
}

type Props struct {
	Config   site.Config
	Language string
}

// PropsFrom returns the footer props for the current request.
func PropsFrom(ctx render.CommonCtx) Props {
	return Props{
		Config:   ctx.Config.Site,
		Language: ctx.Language,
	}
}

// DocURL returns the URL of the doc page in the props' language.
func (p Props) DocURL(doc string) string {
	return p.Config.DocURL(doc, p.Language)
}

func (p Props) DocLinks() []linklist.Link {
	var links = make([]linklist.Link, len(Docs))
	for i, doc := range Docs {
		links[i] = linklist.Link{
			Label: doc.Label,
			URL:   p.DocURL(doc.Name),
		}
	}
	return links
}

func (p Props) CommunityLinks() []linklist.Link {
	var links = Community
	return links[:]
}

func (p Props) Sections() []linklist.Section {
	return []linklist.Section{
		{Title: "Docs", Links: p.DocLinks()},
		{Title: "Community", Links: p.CommunityLinks()},
	}
}

func (p Props) Copyright() string {
	return p.Config.Copyright
}

// Render renders the footer on its own.
func Render(p Props) template.HTML {
	return tmpl.Render(p)
}
