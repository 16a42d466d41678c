// Package api provides JSON HTTP handlers for the theme preference and link catalogue.
package api

import (
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/linkhub/app/links"
	"github.com/umputun/linkhub/app/server/internal"
	"github.com/umputun/linkhub/app/theme"
)

//go:generate moq -out mocks/statussource.go -pkg mocks -skip-ensure -fmt goimports . StatusSource

// StatusSource reports link reachability.
type StatusSource interface {
	Statuses() []links.Status
}

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	env       internal.EnvConfig
	catalogue links.Catalogue
	checker   StatusSource
}

// themeResponse is the theme state as seen by the current visitor.
type themeResponse struct {
	Theme string `json:"theme"`
	Ready bool   `json:"ready"`
}

// New creates a new API handler.
// checker is optional, pass nil when link checking is disabled.
func New(env internal.EnvConfig, catalogue links.Catalogue, checker StatusSource) *Handler {
	return &Handler{env: env, catalogue: catalogue, checker: checker}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /theme", h.handleTheme)
	r.HandleFunc("POST /theme/toggle", h.handleToggle)
	r.HandleFunc("DELETE /theme", h.handleForget)
	r.HandleFunc("GET /links", h.handleLinks)
	r.HandleFunc("GET /links/status", h.handleLinkStatus)
}

// handleTheme returns the resolved theme.
// GET /api/theme
func (h *Handler) handleTheme(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := internal.Session(w, r, h.env)
	rest.RenderJSON(w, stateOf(ctrl))
}

// handleToggle flips the theme and returns the new state.
// POST /api/theme/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := internal.Session(w, r, h.env)
	ctrl.Toggle(r.Context())
	log.Printf("[DEBUG] api theme toggled to %s", ctrl.Theme())
	rest.RenderJSON(w, stateOf(ctrl))
}

// handleForget drops the stored preference and returns the theme resolved without it.
// DELETE /api/theme
func (h *Handler) handleForget(w http.ResponseWriter, r *http.Request) {
	env := internal.NewEnv(w, r, h.env)
	if err := env.Forget(r.Context()); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to forget preference")
		return
	}
	ctrl := theme.New(env, &theme.Marker{})
	ctrl.Resolve(r.Context())
	log.Printf("[DEBUG] api theme preference forgotten, resolved %s", ctrl.Theme())
	rest.RenderJSON(w, stateOf(ctrl))
}

// handleLinks returns the link catalogue.
// GET /api/links
func (h *Handler) handleLinks(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, h.catalogue)
}

// handleLinkStatus returns the last reachability check of every link.
// GET /api/links/status
func (h *Handler) handleLinkStatus(w http.ResponseWriter, r *http.Request) {
	if h.checker == nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, nil, "link checking disabled")
		return
	}
	rest.RenderJSON(w, h.checker.Statuses())
}

func stateOf(ctrl *theme.Controller) themeResponse {
	return themeResponse{Theme: ctrl.Theme().String(), Ready: ctrl.Ready()}
}
