package footer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-test/deep"
	"github.com/replicante-io/docsite/frontserver/components/linklist"
	"github.com/replicante-io/docsite/site"
)

var testConfig = site.Config{
	BaseURL:   "https://example.org/",
	Copyright: "© 2023 Example",
}

func renderDocument(t *testing.T, p Props) *goquery.Document {
	t.Helper()

	h := Render(p)
	if h == "" {
		t.Fatal("Footer rendered empty")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(h)))
	if err != nil {
		t.Fatal("Failed to parse footer:", err)
	}

	return doc
}

func TestDocLinks(t *testing.T) {
	t.Run("DefaultLanguage", func(t *testing.T) {
		for _, lang := range []string{"", "en"} {
			p := Props{Config: testConfig, Language: lang}

			var expect = []linklist.Link{
				{Label: "Quick Start", URL: "https://example.org/docs/quick-start"},
				{Label: "Features", URL: "https://example.org/docs/features"},
				{Label: "API Reference", URL: "https://example.org/docs/api"},
			}

			if diff := deep.Equal(p.DocLinks(), expect); diff != nil {
				t.Errorf("Unexpected links for %q: %v", lang, diff)
			}
		}
	})

	t.Run("French", func(t *testing.T) {
		p := Props{Config: testConfig, Language: "fr"}

		var expect = []linklist.Link{
			{Label: "Quick Start", URL: "https://example.org/docs/frquick-start"},
			{Label: "Features", URL: "https://example.org/docs/frfeatures"},
			{Label: "API Reference", URL: "https://example.org/docs/frapi"},
		}

		if diff := deep.Equal(p.DocLinks(), expect); diff != nil {
			t.Fatal("Unexpected links:", diff)
		}
	})
}

func TestCommunityLinksCopy(t *testing.T) {
	p := Props{Config: testConfig}

	links := p.CommunityLinks()
	links[0].URL = "https://evil.example/"

	if Community[0].URL != "https://github.com/replicante-io" {
		t.Fatal("Community links were mutated through CommunityLinks")
	}
}

func TestRender(t *testing.T) {
	t.Run("Structure", func(t *testing.T) {
		doc := renderDocument(t, Props{Config: testConfig})

		footer := doc.Find("footer.nav-footer#footer")
		if footer.Length() != 1 {
			t.Fatal("Missing footer container")
		}

		columns := footer.Find("section.sitemap > div")
		if columns.Length() != 2 {
			t.Fatal("Unexpected number of sitemap columns:", columns.Length())
		}

		var titles []string
		columns.Find("h5").Each(func(_ int, s *goquery.Selection) {
			titles = append(titles, s.Text())
		})

		if diff := deep.Equal(titles, []string{"Docs", "Community"}); diff != nil {
			t.Fatal("Unexpected column titles:", diff)
		}

		if n := columns.Eq(0).Find("a").Length(); n != 3 {
			t.Fatal("Unexpected number of doc links:", n)
		}
		if n := columns.Eq(1).Find("a").Length(); n != 2 {
			t.Fatal("Unexpected number of community links:", n)
		}
	})

	t.Run("Links", func(t *testing.T) {
		doc := renderDocument(t, Props{Config: testConfig, Language: "fr"})

		var links []linklist.Link
		doc.Find("section.sitemap a").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			links = append(links, linklist.Link{Label: s.Text(), URL: href})
		})

		var expect = []linklist.Link{
			{Label: "Quick Start", URL: "https://example.org/docs/frquick-start"},
			{Label: "Features", URL: "https://example.org/docs/frfeatures"},
			{Label: "API Reference", URL: "https://example.org/docs/frapi"},
			{Label: "GitHub Organisation", URL: "https://github.com/replicante-io"},
			{Label: "Official Website", URL: "https://www.replicante.io/"},
		}

		if diff := deep.Equal(links, expect); diff != nil {
			t.Fatal("Unexpected links:", diff)
		}
	})

	t.Run("Copyright", func(t *testing.T) {
		var copyrights = []string{
			"© 2023 Example",
			"Copyright <b>Replicante</b> & friends",
			"",
		}

		for _, copyright := range copyrights {
			cfg := testConfig
			cfg.Copyright = copyright

			doc := renderDocument(t, Props{Config: cfg})

			if text := doc.Find("section.copyright").Text(); text != copyright {
				t.Errorf("Unexpected copyright %q, expected %q", text, copyright)
			}

			if n := doc.Find("section.copyright b").Length(); n != 0 {
				t.Errorf("Copyright %q was not escaped", copyright)
			}
		}
	})

	t.Run("EmptyConfig", func(t *testing.T) {
		doc := renderDocument(t, Props{})

		href, _ := doc.Find("section.sitemap a").First().Attr("href")
		if href != "docs/quick-start" {
			t.Fatalf("Unexpected href %q", href)
		}
	})

	t.Run("EscapedBaseURL", func(t *testing.T) {
		var tests = []struct {
			base string
			href string
		}{
			{"https://example.org/ü/", "https://example.org/%c3%bc/docs/quick-start"},
			{"javascript:alert(1)//", "#ZgotmplZ"},
		}

		for _, test := range tests {
			cfg := testConfig
			cfg.BaseURL = test.base

			doc := renderDocument(t, Props{Config: cfg})

			href, _ := doc.Find("section.sitemap a").First().Attr("href")
			if href != test.href {
				t.Errorf("Unexpected href %q for base %q, expected %q", href, test.base, test.href)
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		p := Props{Config: testConfig, Language: "de"}
		if Render(p) != Render(p) {
			t.Fatal("Render is not deterministic")
		}
	})
}
