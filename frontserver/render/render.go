package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/pkg/errors"
	"github.com/replicante-io/docsite/frontserver/httperr"
	"github.com/replicante-io/docsite/site"
)

// Renderer represents a renderable page.
type Renderer = func(r *Request) (Render, error)

// ErrorRenderer represents a renderable page for errors.
type ErrorRenderer = func(r *Request, err error) (Render, error)

type Render struct {
	Title       string // og:title, <title>
	Description string // og:description
	ImageURL    string // og:image

	Body template.HTML
	// Fragment writes Body as-is instead of wrapping it in the index page.
	Fragment bool
}

// Empty is a blank page.
var Empty = Render{}

type Config struct {
	Site       site.Config
	MinifyHTML bool
}

type renderCtx struct {
	Theme    Theme
	Render   Render
	Config   Config
	Language string
}

func (r renderCtx) FormatTitle() string {
	if r.Render.Title == "" {
		return r.Config.Site.Title
	}
	return fmt.Sprintf("%s - %s", r.Render.Title, r.Config.Site.Title)
}

// Lang returns the value of the html lang attribute.
func (r renderCtx) Lang() string {
	if r.Language == "" {
		return site.DefaultLanguage
	}
	return r.Language
}

type Request struct {
	*http.Request
	Writer http.ResponseWriter
	CommonCtx
}

type CommonCtx struct {
	Config   Config
	Request  *http.Request
	Language string
}

// DocURL returns the URL to the given doc page in the request's language.
func (c CommonCtx) DocURL(doc string) string {
	return c.Config.Site.DocURL(doc, c.Language)
}

type Mux struct {
	*chi.Mux
	cfg  Config
	errR ErrorRenderer
}

// NewMux creates a new Mux. The given middlewares run after the theme
// middleware and before every route.
func NewMux(cfg Config, middlewares ...func(http.Handler) http.Handler) *Mux {
	ensureInit()

	r := chi.NewMux()
	r.Use(ThemeM)
	r.Use(middlewares...)
	r.Post("/theme", handleSetTheme)
	r.Get("/static/components.css", componentsCSSHandler)

	return &Mux{r, cfg, nil}
}

func (m *Mux) SetErrorRenderer(r ErrorRenderer) {
	m.errR = r
}

// NewRequest wraps the request. The language comes from the lang route
// parameter, or the lang query parameter if the route has none.
func (m *Mux) NewRequest(w http.ResponseWriter, r *http.Request) *Request {
	var lang = chi.URLParam(r, "lang")
	if lang == "" {
		lang = r.URL.Query().Get("lang")
	}

	return &Request{
		Request: r,
		Writer:  w,
		CommonCtx: CommonCtx{
			Config:   m.cfg,
			Request:  r,
			Language: lang,
		},
	}
}

// M is the middleware wrapper.
func (m *Mux) M(render Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Write the proper headers.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		var request = m.NewRequest(w, r)

		page, err := m.render(request, render)
		if err != nil {
			// Copy the status code if available. Else, fallback to 500.
			w.WriteHeader(httperr.ErrCode(err))

			// If there is no error renderer, then we just write the error down
			// in plain text.
			if m.errR == nil {
				fmt.Fprintf(w, "Error: %v", err)
				return
			}

			// Render the error page.
			page, err = m.errR(request, err)
			if err != nil {
				// This shouldn't error out, so we should log it.
				log.Println("Error rendering error page:", err)
				return
			}
		}

		// Don't render anything if an empty page is returned and there is no
		// error.
		if page == Empty {
			return
		}

		if err := m.write(w, request, page); err != nil {
			log.Println("Failed to write page:", err)
		}
	}
}

func (m *Mux) render(r *Request, render Renderer) (Render, error) {
	if !m.cfg.Site.AcceptsLanguage(r.Language) {
		var lang = r.Language
		// The error page is shown in the default language.
		r.Language = ""
		return Empty, httperr.New(http.StatusNotFound, fmt.Sprintf("unknown language %q", lang))
	}
	return render(r)
}

func (m *Mux) write(w io.Writer, r *Request, page Render) error {
	var b bytes.Buffer

	if page.Fragment {
		b.WriteString(string(page.Body))
	} else {
		var renderCtx = renderCtx{
			Theme:    GetTheme(r.Context()),
			Render:   page,
			Config:   m.cfg,
			Language: r.Language,
		}

		if err := index.Execute(&b, renderCtx); err != nil {
			return errors.Wrap(err, "Failed to execute index")
		}
	}

	if m.cfg.MinifyHTML {
		return writeMinified(w, "text/html", &b)
	}

	_, err := b.WriteTo(w)
	return err
}

func (m *Mux) Get(route string, r Renderer) {
	m.Mux.Get(route, m.M(r))
}

// Muxer implements the interface that's passable to pages' mount functions.
type Muxer interface {
	M(Renderer) http.HandlerFunc
}

func (m *Mux) Mount(route string, mounter func(Muxer) http.Handler) {
	m.Mux.Mount(route, mounter(m))
}
