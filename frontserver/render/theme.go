package render

import (
	"context"
	"math"
	"net/http"
	"time"
)

type Theme uint8

const (
	LightTheme Theme = iota
	DarkTheme
	NordTheme // also light
)

// DefaultTheme matches the colors of the project website.
const DefaultTheme = NordTheme

func ParseTheme(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "dark":
		return DarkTheme
	case "nord":
		return NordTheme
	}

	return DefaultTheme
}

func (t Theme) String() string {
	switch t {
	case LightTheme:
		return "light"
	case DarkTheme:
		return "dark"
	case NordTheme:
		fallthrough
	default:
		return "nord"
	}
}

// Themes returns every theme in the order the switcher lists them.
func Themes() []Theme {
	return []Theme{NordTheme, LightTheme, DarkTheme}
}

type themeKey struct{}

// ThemeM stores the theme picked by the theme cookie in the request context.
func ThemeM(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var theme = DefaultTheme

		if c, err := r.Cookie("theme"); err == nil {
			theme = ParseTheme(c.Value)
		}

		next.ServeHTTP(
			w,
			r.WithContext(context.WithValue(r.Context(), themeKey{}, theme)),
		)
	})
}

func GetTheme(ctx context.Context) Theme {
	if v, ok := ctx.Value(themeKey{}).(Theme); ok {
		return v
	}
	return DefaultTheme
}

func SetThemeCookie(w http.ResponseWriter, theme Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     "theme",
		Value:    theme.String(),
		Expires:  time.Unix(math.MaxInt32, 0),
		SameSite: http.SameSiteLaxMode,
	})
}

func handleSetTheme(w http.ResponseWriter, r *http.Request) {
	SetThemeCookie(w, ParseTheme(r.FormValue("theme")))

	var back = r.Referer()
	if back == "" {
		back = "/"
	}

	// https://developer.mozilla.org/en-US/docs/Web/HTTP/Redirections
	http.Redirect(w, r, back, http.StatusSeeOther)
}
