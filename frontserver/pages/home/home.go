package home

import (
	_ "embed"

	"github.com/replicante-io/docsite/frontserver/components/footer"
	"github.com/replicante-io/docsite/frontserver/render"
)

//go:embed home.html
var homeHTML string

//go:embed home.css
var homeCSS string

func init() {
	render.RegisterCSS("pages/home/home.css", homeCSS)
}

var tmpl = render.BuildPage("home", render.Page{
	Template: homeHTML,
	Components: map[string]render.Component{
		"footer": footer.Component,
	},
})

type renderCtx struct {
	render.CommonCtx
	Theme render.Theme
}

func (r renderCtx) Themes() []render.Theme {
	return render.Themes()
}

func (r renderCtx) Footer() footer.Props {
	return footer.PropsFrom(r.CommonCtx)
}

func Render(r *render.Request) (render.Render, error) {
	body, err := tmpl.TryRender(renderCtx{
		CommonCtx: r.CommonCtx,
		Theme:     render.GetTheme(r.Context()),
	})
	if err != nil {
		return render.Empty, err
	}

	return render.Render{
		Description: "Documentation for " + r.Config.Site.Title,
		Body:        body,
	}, nil
}
