package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/linkhub/app/enum"
	"github.com/umputun/linkhub/app/store"
	"github.com/umputun/linkhub/app/theme"
)

//go:generate moq -out mocks/preferencestore.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore

// PreferenceStore keeps visitor themes for the db storage mode.
type PreferenceStore interface {
	Get(ctx context.Context, visitor string) (string, error)
	Set(ctx context.Context, visitor, theme string) error
	Delete(ctx context.Context, visitor string) error
}

// ErrNoPreference is returned by environments when nothing is stored for the request.
var ErrNoPreference = errors.New("no stored preference")

// EnvConfig selects how preferences are persisted for a request.
type EnvConfig struct {
	Storage enum.Storage
	Store   PreferenceStore // required for db storage
	BaseURL string
}

// Env is a per-request theme environment which can also forget the stored preference.
type Env interface {
	theme.Environment
	Forget(ctx context.Context) error
}

// NewEnv makes the theme environment for a single request.
// Falls back to cookie storage when db storage has no store configured.
func NewEnv(w http.ResponseWriter, r *http.Request, cfg EnvConfig) Env {
	path := CookiePath(cfg.BaseURL)
	if cfg.Storage == enum.StorageDB && cfg.Store != nil {
		return &storeEnv{w: w, r: r, store: cfg.Store, path: path, visitor: visitorID(r)}
	}
	return &cookieEnv{w: w, r: r, path: path}
}

// Session resolves a theme controller for the request. The returned marker carries the
// visual root state to render.
func Session(w http.ResponseWriter, r *http.Request, cfg EnvConfig) (*theme.Controller, *theme.Marker) {
	marker := &theme.Marker{}
	ctrl := theme.New(NewEnv(w, r, cfg), marker)
	ctrl.Resolve(r.Context())
	return ctrl, marker
}

// cookieEnv stores the theme in a long-lived browser cookie.
type cookieEnv struct {
	w         http.ResponseWriter
	r         *http.Request
	path      string
	set       string // value written during this request
	forgotten bool   // request cookie no longer counts after Forget
}

func (e *cookieEnv) Get(context.Context) (string, error) {
	if e.set != "" {
		return e.set, nil
	}
	if e.forgotten {
		return "", ErrNoPreference
	}
	cookie, err := e.r.Cookie(ThemeCookie)
	if err != nil || cookie.Value == "" {
		return "", ErrNoPreference
	}
	return cookie.Value, nil
}

func (e *cookieEnv) Set(_ context.Context, value string) error {
	http.SetCookie(e.w, &http.Cookie{
		Name:     ThemeCookie,
		Value:    value,
		Path:     e.path,
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	e.set = value
	return nil
}

func (e *cookieEnv) Forget(context.Context) error {
	http.SetCookie(e.w, &http.Cookie{Name: ThemeCookie, Value: "", Path: e.path, MaxAge: -1, HttpOnly: true})
	e.set, e.forgotten = "", true
	return nil
}

func (e *cookieEnv) PrefersDark(context.Context) bool { return PrefersDark(e.r) }

// storeEnv stores the theme in the preference store keyed by the visitor cookie.
type storeEnv struct {
	w       http.ResponseWriter
	r       *http.Request
	store   PreferenceStore
	path    string
	visitor string
}

func (e *storeEnv) Get(ctx context.Context) (string, error) {
	if e.visitor == "" {
		return "", ErrNoPreference
	}
	value, err := e.store.Get(ctx, e.visitor)
	if err != nil {
		return "", fmt.Errorf("get preference: %w", err)
	}
	return value, nil
}

func (e *storeEnv) Set(ctx context.Context, value string) error {
	if e.visitor == "" {
		e.visitor = uuid.NewString()
		http.SetCookie(e.w, &http.Cookie{
			Name:     VisitorCookie,
			Value:    e.visitor,
			Path:     e.path,
			MaxAge:   cookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		log.Printf("[DEBUG] issued visitor id %s", e.visitor)
	}
	if err := e.store.Set(ctx, e.visitor, value); err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}

func (e *storeEnv) Forget(ctx context.Context) error {
	if e.visitor == "" {
		return nil
	}
	if err := e.store.Delete(ctx, e.visitor); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("delete preference: %w", err)
	}
	return nil
}

func (e *storeEnv) PrefersDark(context.Context) bool { return PrefersDark(e.r) }

// visitorID returns the visitor id from the cookie, empty if missing or not a uuid.
func visitorID(r *http.Request) string {
	cookie, err := r.Cookie(VisitorCookie)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return ""
	}
	return id.String()
}
