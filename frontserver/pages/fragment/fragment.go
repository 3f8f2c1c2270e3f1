// Package fragment serves page parts without the surrounding index page, for
// sites that include them server-side.
package fragment

import (
	"github.com/replicante-io/docsite/frontserver/components/footer"
	"github.com/replicante-io/docsite/frontserver/render"
)

// RenderFooter renders the footer alone.
func RenderFooter(r *render.Request) (render.Render, error) {
	return render.Render{
		Body:     footer.Render(footer.PropsFrom(r.CommonCtx)),
		Fragment: true,
	}, nil
}
