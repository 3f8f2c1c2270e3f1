package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/replicante-io/docsite/site"
	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/css"
	"github.com/tdewolff/minify/html"
)

//go:embed index.html
var indexHTML string

//go:embed style.css
var styleCSS string

// runtime minifier
var minifier = func() (minifier *minify.M) {
	minifier = minify.New()
	minifier.AddFunc("text/css", css.Minify)
	minifier.AddFunc("text/html", html.Minify)
	return
}()

// MinifyHTML minifies the given HTML fragment.
func MinifyHTML(h template.HTML) (template.HTML, error) {
	var b bytes.Buffer
	if err := minifier.Minify("text/html", &b, strings.NewReader(string(h))); err != nil {
		return "", errors.Wrap(err, "Failed to minify HTML")
	}
	return template.HTML(b.String()), nil
}

var globalFns = template.FuncMap{
	"docURL": site.DocURL,
}

// Component is a named template fragment. Nested components are available to
// the component's template through {{ template "name" }}.
type Component struct {
	Template   string
	Components map[string]Component
	Functions  template.FuncMap
}

type Page struct {
	Template   string
	Components map[string]Component
	Functions  template.FuncMap
}

// prepareList is the list of templates to call prepare on.
var prepareList []*Template

func prepareAllTemplates() {
	for _, tmpl := range prepareList {
		tmpl.prepare()
	}
}

func BuildPage(n string, p Page) *Template {
	tmpl := &Template{
		name: n,
		page: p,
	}

	prepareList = append(prepareList, tmpl)

	return tmpl
}

type Template struct {
	*template.Template
	name string
	page Page
	once sync.Once
}

func (t *Template) prepare() {
	t.once.Do(t.do)
}

func (t *Template) do() {
	var components = map[string]Component{}
	var functions = template.FuncMap{}

	for n, fn := range t.page.Functions {
		functions[n] = fn
	}

	collectComponents(t.page.Components, components, functions)

	tmpl := template.New(t.name)
	tmpl = tmpl.Funcs(globalFns)
	tmpl = tmpl.Funcs(functions)
	tmpl = template.Must(tmpl.Parse(t.page.Template))

	// Parse all components' HTMLs.
	for n, component := range components {
		tmpl = template.Must(tmpl.Parse(
			fmt.Sprintf("{{ define %q }}%s{{ end }}", n, component.Template),
		))
	}

	t.Template = tmpl
}

// collectComponents flattens the component tree into dst. The first
// component or function registered under a name wins.
func collectComponents(src, dst map[string]Component, fns template.FuncMap) {
	for n, component := range src {
		if _, ok := dst[n]; ok {
			continue
		}
		dst[n] = component

		for name, fn := range component.Functions {
			if _, ok := fns[name]; !ok {
				fns[name] = fn
			}
		}

		collectComponents(component.Components, dst, fns)
	}
}

// Render renders the template with the given argument into HTML. Errors are
// logged and an empty fragment is returned in their place.
func (t *Template) Render(v interface{}) template.HTML {
	h, err := t.TryRender(v)
	if err != nil {
		log.Println("Template error:", err)
		return ""
	}
	return h
}

// TryRender is Render that returns the execution error.
func (t *Template) TryRender(v interface{}) (template.HTML, error) {
	t.prepare()

	var b bytes.Buffer

	if err := t.Execute(&b, v); err != nil {
		return "", errors.Wrapf(err, "Failed to execute template %s", t.name)
	}

	return template.HTML(b.String()), nil
}

type stylesheet struct {
	name string
	src  string
}

var (
	stylesheets      = []stylesheet{{"render/style.css", styleCSS}}
	componentsCSS    = bytes.Buffer{}
	componentModTime = time.Now()
)

// RegisterCSS adds the stylesheet to the global CSS file, which can be located
// in /static/components.css. It must be called before the first Mux is made.
func RegisterCSS(name, css string) {
	stylesheets = append(stylesheets, stylesheet{name, css})
}

func initializeCSS() {
	for _, sheet := range stylesheets {
		err := minifier.Minify("text/css", &componentsCSS, strings.NewReader(sheet.src))
		if err != nil {
			log.Panicln("Failed to minify CSS", sheet.name+":", err)
		}
	}

	log.Printf(
		"Bundled %d stylesheets into components.css (%s)\n",
		len(stylesheets), humanize.Bytes(uint64(componentsCSS.Len())),
	)
}

func componentsCSSHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeContent(
		w, r, "components.css", componentModTime,
		bytes.NewReader(componentsCSS.Bytes()),
	)
}

var initOnce sync.Once
var index *template.Template

func ensureInit() {
	initOnce.Do(func() {
		index = template.Must(
			template.
				New("index").
				Funcs(globalFns).
				Parse(indexHTML),
		)

		initializeCSS()
		prepareAllTemplates()
	})
}

func writeMinified(w io.Writer, mediatype string, r io.Reader) error {
	return minifier.Minify(mediatype, w, r)
}
