// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/http"
	"strings"
)

const (
	// ThemeCookie holds the theme in cookie storage mode.
	ThemeCookie = "theme"
	// VisitorCookie holds the anonymous visitor id in db storage mode.
	VisitorCookie = "linkhub-visitor"
	// PrefersColorSchemeHint is the client hint carrying the system color scheme.
	PrefersColorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

	cookieMaxAge = 365 * 24 * 60 * 60 // 1 year
)

// CookiePath returns the path for cookies (base URL with trailing slash or "/").
func CookiePath(baseURL string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return "/"
	}
	return baseURL + "/"
}

// PrefersDark reports whether the request carries a dark color scheme client hint.
func PrefersDark(r *http.Request) bool {
	return strings.EqualFold(strings.Trim(r.Header.Get(PrefersColorSchemeHint), `" `), "dark")
}

// ClientHints asks browsers to send the color scheme hint on every request.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", PrefersColorSchemeHint)
		w.Header().Set("Critical-CH", PrefersColorSchemeHint)
		w.Header().Add("Vary", PrefersColorSchemeHint)
		next.ServeHTTP(w, r)
	})
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
