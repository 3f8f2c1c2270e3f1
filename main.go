package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/c2h5oh/datasize"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	"github.com/replicante-io/docsite/frontserver"
	"github.com/replicante-io/docsite/frontserver/components/footer"
	"github.com/replicante-io/docsite/frontserver/render"
	"github.com/replicante-io/docsite/site"
	"github.com/spf13/pflag"
	"golang.org/x/net/http2"

	toml "github.com/pelletier/go-toml"
)

var (
	configGlob = "./config*.toml"
	language   = ""
	minify     = false
)

func stderrlnf(f string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, f+"\n", v...)
}

type Config struct {
	ListenAddress string            `toml:"listenAddress"`
	MaxHeaderSize datasize.ByteSize `toml:"maxHeaderSize"`

	Site     site.Config             `toml:"site"`
	Frontend frontserver.FrontConfig `toml:"frontend"`
}

func NewConfig() Config {
	return Config{
		ListenAddress: ":8080",
		MaxHeaderSize: 64 * datasize.KB,
		Site:          site.NewConfig(),
		Frontend:      frontserver.NewConfig(),
	}
}

// Validator is used for configs.
type Validator interface {
	Validate() error
}

func (c *Config) Validate() error {
	if c.ListenAddress == "" {
		return errors.New("Field `listenAddress' missing")
	}

	var fields = []Validator{
		&c.Site,
		&c.Frontend,
	}

	for _, v := range fields {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig overlays every file matching the glob on top of the defaults.
// Files load in lexical order, so later names override earlier ones:
// config.toml is overridden by config.zz-local.toml but not by
// config.local.toml.
func loadConfig(glob string) (Config, error) {
	var cfg = NewConfig()

	d, err := filepath.Glob(glob)
	if err != nil {
		return cfg, errors.Wrap(err, "Failed to glob")
	}

	if len(d) == 0 {
		return cfg, errors.Errorf("Glob %q returns no matches", glob)
	}

	for _, path := range d {
		f, err := ioutil.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "Failed to read globbed config file")
		}

		t, err := toml.LoadBytes(f)
		if err != nil {
			return cfg, errors.Wrapf(err, "Failed to load TOML from %s", path)
		}

		if err := t.Unmarshal(&cfg); err != nil {
			return cfg, errors.Wrapf(err, "Failed to unmarshal %s", path)
		}
	}

	return cfg, cfg.Validate()
}

func init() {
	pflag.StringVarP(
		&configGlob, "config", "c", configGlob,
		"Path to config file with glob support, matches load in lexical order",
	)

	pflag.StringVarP(
		&language, "language", "l", language,
		"Language of the rendered footer, empty for the default",
	)

	pflag.BoolVarP(
		&minify, "minify", "m", minify,
		"Minify the rendered footer",
	)

	pflag.Usage = func() {
		stderrlnf("Usage: %s [subcommand] [flags...]", filepath.Base(os.Args[0]))
		stderrlnf("Subcommands:")
		stderrlnf("  render   Print the footer HTML to stdout")
		stderrlnf("  serve    Run the HTTP server")
		stderrlnf("Flags:")
		pflag.PrintDefaults()
	}
}

func main() {
	pflag.Parse()

	cfg, err := loadConfig(configGlob)
	if err != nil {
		log.Fatalln("Config error:", err)
	}

	switch pflag.Arg(0) {
	case "render":
		if err := renderFooter(os.Stdout, cfg.Site, language, minify); err != nil {
			log.Fatalln(err)
		}

	case "serve":
		fallthrough
	default:
		serve(cfg)
	}
}

func renderFooter(w io.Writer, cfg site.Config, lang string, minify bool) error {
	h := footer.Render(footer.Props{
		Config:   cfg,
		Language: lang,
	})

	if minify {
		m, err := render.MinifyHTML(h)
		if err != nil {
			return err
		}
		h = m
	}

	_, err := fmt.Fprintln(w, h)
	return errors.Wrap(err, "Failed to write footer")
}

func serve(cfg Config) {
	f, err := frontserver.New(cfg.Site, cfg.Frontend)
	if err != nil {
		log.Fatalln("Failed to create frontend:", err)
	}

	c := middleware.NewCompressor(5)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})

	mux := chi.NewMux()
	mux.Use(
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		c.Handler,
	)
	mux.Mount("/", f)

	l, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		log.Fatalln("Failed to listen:", err)
	}

	var server = http.Server{
		Handler:        mux,
		MaxHeaderBytes: int(cfg.MaxHeaderSize.Bytes()),
	}

	// Explicitly set up HTTP/2.
	err = http2.ConfigureServer(&server, &http2.Server{
		MaxHandlers:          4096,
		MaxConcurrentStreams: 1024,
	})

	if err != nil {
		log.Fatalln("Failed to configure HTTP/2 server:", err)
	}

	log.Println("Starting HTTP listener at", l.Addr())

	go func() {
		if err := server.Serve(l); err != nil && err != http.ErrServerClosed {
			log.Fatalln("Failed to start:", err)
		}
	}()

	// Handle SIGINT and gracefully close the server.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig

	// Give the server a 10 seconds timeout for shutting down.
	ctx, cancel := context.WithTimeout(context.TODO(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalln("Failed to gracefully close the server:", err)
	}
}
