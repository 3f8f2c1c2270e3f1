package errorpage

import (
	_ "embed"
	"net/http"

	"github.com/replicante-io/docsite/frontserver/components/errbox"
	"github.com/replicante-io/docsite/frontserver/components/footer"
	"github.com/replicante-io/docsite/frontserver/httperr"
	"github.com/replicante-io/docsite/frontserver/render"
)

//go:embed errorpage.html
var errorpageHTML string

//go:embed errorpage.css
var errorpageCSS string

func init() {
	render.RegisterCSS("pages/errorpage/errorpage.css", errorpageCSS)
}

var tmpl = render.BuildPage("errorpage", render.Page{
	Template: errorpageHTML,
	Components: map[string]render.Component{
		"errbox": errbox.Component,
		"footer": footer.Component,
	},
})

type renderCtx struct {
	render.CommonCtx
	Status int
	Error  error
}

func (r renderCtx) StatusText() string {
	return http.StatusText(r.Status)
}

func (r renderCtx) Footer() footer.Props {
	return footer.PropsFrom(r.CommonCtx)
}

func RenderError(r *render.Request, err error) (render.Render, error) {
	var status = httperr.ErrCode(err)

	body, renderErr := tmpl.TryRender(renderCtx{
		CommonCtx: r.CommonCtx,
		Status:    status,
		Error:     err,
	})
	if renderErr != nil {
		return render.Empty, renderErr
	}

	return render.Render{
		Title: http.StatusText(status),
		Body:  body,
	}, nil
}

// NotFound is the renderer for unknown routes.
func NotFound(r *render.Request) (render.Render, error) {
	return render.Empty, httperr.New(http.StatusNotFound, "page not found")
}
