// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/linkhub/app/links"
	"github.com/umputun/linkhub/app/server/internal"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Config holds web handler configuration.
type Config struct {
	BaseURL   string
	Version   string
	Env       internal.EnvConfig
	Catalogue links.Catalogue
}

// Handler handles web UI requests.
type Handler struct {
	tmpl      *template.Template
	env       internal.EnvConfig
	catalogue links.Catalogue
	baseURL   string
	version   string
}

// New creates a new web handler.
func New(cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	env := cfg.Env
	env.BaseURL = cfg.BaseURL
	return &Handler{
		tmpl:      tmpl,
		env:       env,
		catalogue: cfg.Catalogue,
		baseURL:   cfg.BaseURL,
		version:   cfg.Version,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
}

// parseTemplates parses all templates from embedded filesystem.
// base.html is the page layout, the rest are named partials it includes.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	if _, err = tmpl.New("base.html").Parse(string(baseContent)); err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	partials := []string{"links", "theme-toggle", "profile"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		if _, parseErr := tmpl.New(name).Parse(string(content)); parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title     string
	Subtitle  string
	Links     []links.Link
	Profile   links.Link
	Theme     string
	RootClass string
	Ready     bool // toggle control is rendered only after the theme is resolved
	BaseURL   string
	Version   string
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}
