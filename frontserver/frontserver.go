// Package frontserver serves the documentation site footer over HTTP, on its
// own and inside a landing page, in every configured language.
package frontserver

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	"github.com/replicante-io/docsite/frontserver/internal/limit"
	"github.com/replicante-io/docsite/frontserver/pages/errorpage"
	"github.com/replicante-io/docsite/frontserver/pages/fragment"
	"github.com/replicante-io/docsite/frontserver/pages/home"
	"github.com/replicante-io/docsite/frontserver/render"
	"github.com/replicante-io/docsite/site"
)

// languageRoute only matches path segments that look like locale codes, so
// that files such as /favicon.ico are not taken for languages.
const languageRoute = "/{lang:[a-z]{2,3}(?:[_-][A-Za-z]{2,4})?}"

type FrontConfig struct {
	MinifyHTML bool `toml:"minifyHTML"`
	// RateLimit is the number of requests per second allowed per client.
	RateLimit float64 `toml:"rateLimit"`
}

func NewConfig() FrontConfig {
	return FrontConfig{
		MinifyHTML: true,
		RateLimit:  16,
	}
}

func (c *FrontConfig) Validate() error {
	if c.RateLimit <= 0 {
		return errors.Errorf("Field `rateLimit' must be positive, got %v", c.RateLimit)
	}
	return nil
}

func New(siteCfg site.Config, cfg FrontConfig) (http.Handler, error) {
	if err := siteCfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid site config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid frontend config")
	}

	r := render.NewMux(
		render.Config{Site: siteCfg, MinifyHTML: cfg.MinifyHTML},
		limit.RateLimit(cfg.RateLimit),
	)
	r.SetErrorRenderer(errorpage.RenderError)
	r.NotFound(r.M(errorpage.NotFound))
	r.Get("/", home.Render)
	r.Get("/footer", fragment.RenderFooter)
	r.Mount(languageRoute, mountLanguage)

	return r, nil
}

func mountLanguage(m render.Muxer) http.Handler {
	r := chi.NewRouter()
	r.Get("/", m.M(home.Render))
	r.Get("/footer", m.M(fragment.RenderFooter))
	r.NotFound(m.M(errorpage.NotFound))
	return r
}
