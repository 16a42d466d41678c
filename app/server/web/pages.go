package web

import (
	"bytes"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/linkhub/app/server/internal"
)

// handleIndex renders the hub page with the resolved theme.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctrl, marker := internal.Session(w, r, h.env)

	data := templateData{
		Title:     h.catalogue.Title,
		Subtitle:  h.catalogue.Subtitle,
		Links:     h.catalogue.Links,
		Profile:   h.catalogue.Profile,
		Theme:     ctrl.Theme().String(),
		RootClass: marker.Class(),
		Ready:     ctrl.Ready(),
		BaseURL:   h.baseURL,
		Version:   h.version,
	}

	// render into a buffer so a template failure can still produce a clean 500
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write page: %v", err)
	}
}

// handleThemeToggle flips the theme between light and dark and persists the choice.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	ctrl, _ := internal.Session(w, r, h.env)
	ctrl.Toggle(r.Context())
	log.Printf("[DEBUG] theme toggled to %s", ctrl.Theme())

	if internal.IsHTMX(r) {
		// trigger full page refresh
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
}
