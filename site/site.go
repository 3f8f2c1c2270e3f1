// Package site describes the documentation website the footer belongs to.
package site

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultLanguage is the implicit locale. It never shows up in document URLs.
const DefaultLanguage = "en"

// Config is the part of the site configuration the footer consumes.
type Config struct {
	// BaseURL is the root every site-relative link hangs off. It must end
	// with a slash.
	BaseURL   string `toml:"baseUrl"`
	Copyright string `toml:"copyright"`
	Title     string `toml:"title"`
	// Languages optionally restricts the locales the HTTP frontend accepts.
	Languages []string `toml:"languages"`
}

func NewConfig() Config {
	return Config{
		BaseURL: "/",
		Title:   "Replicante",
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("Field `baseUrl' missing")
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		return errors.Errorf("Field `baseUrl' must end with a slash, got %q", c.BaseURL)
	}
	return nil
}

// AcceptsLanguage returns true if the given language can be served. The
// default language is always accepted, so is any language when no list is
// configured.
func (c Config) AcceptsLanguage(lang string) bool {
	if Prefix(lang) == "" || len(c.Languages) == 0 {
		return true
	}

	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}

	return false
}

// DocURL returns the URL of the doc page in the given language.
func (c Config) DocURL(doc, lang string) string {
	return DocURL(c.BaseURL, doc, lang)
}

// Prefix returns the string that prefixes document names for the given
// language, which is empty for the default language.
func Prefix(lang string) string {
	if lang == DefaultLanguage {
		return ""
	}
	return lang
}

// DocURL builds baseURL + "docs/" + prefix + doc. There is no separator
// between the language prefix and the document name, so "fr" and "features"
// give "docs/frfeatures". Published links depend on this exact shape.
func DocURL(baseURL, doc, lang string) string {
	return baseURL + "docs/" + Prefix(lang) + doc
}
