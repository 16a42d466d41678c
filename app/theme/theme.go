// Package theme resolves, applies, toggles and persists the visitor's light/dark preference.
package theme

import (
	"context"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/linkhub/app/enum"
)

//go:generate moq -out mocks/environment.go -pkg mocks -skip-ensure -fmt goimports . Environment
//go:generate moq -out mocks/root.go -pkg mocks -skip-ensure -fmt goimports . Root

// Store is the durable preference store. Get returns an error when nothing is stored.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string) error
}

// SystemPreference reports the ambient dark-mode preference of the host environment.
type SystemPreference interface {
	PrefersDark(ctx context.Context) bool
}

// Environment combines the durable store with the system preference query.
type Environment interface {
	Store
	SystemPreference
}

// Root is the visual root carrying the theme marker.
type Root interface {
	MarkDark(dark bool)
}

// Controller owns the theme preference for a single page session.
// It is not safe for concurrent use; each session gets its own controller.
type Controller struct {
	env   Environment
	root  Root
	theme enum.Theme
	state enum.Readiness
}

// New makes an uninitialized controller. Call Resolve before anything else.
func New(env Environment, root Root) *Controller {
	return &Controller{env: env, root: root, theme: enum.ThemeLight, state: enum.ReadinessUninitialized}
}

// Resolve determines the session theme: stored preference first, then the system
// preference, then light. The result is applied to the root and the controller becomes ready.
func (c *Controller) Resolve(ctx context.Context) enum.Theme {
	c.theme = c.resolve(ctx)
	c.root.MarkDark(c.theme.Dark())
	c.state = enum.ReadinessReady
	return c.theme
}

func (c *Controller) resolve(ctx context.Context) enum.Theme {
	stored, err := c.env.Get(ctx)
	if err == nil {
		if th, perr := enum.ParseTheme(strings.TrimSpace(stored)); perr == nil {
			return th
		}
		log.Printf("[DEBUG] ignoring stored theme %q", stored)
	}
	if c.env.PrefersDark(ctx) {
		return enum.ThemeDark
	}
	return enum.ThemeLight
}

// Toggle flips the theme, re-applies it to the root and persists it.
// Store failures are logged only, the in-session state stays correct.
// A toggle before Resolve is ignored.
func (c *Controller) Toggle(ctx context.Context) {
	if c.state != enum.ReadinessReady {
		log.Printf("[WARN] theme toggle before resolve ignored")
		return
	}
	c.theme = c.theme.Toggle()
	c.root.MarkDark(c.theme.Dark())
	if err := c.env.Set(ctx, c.theme.String()); err != nil {
		log.Printf("[WARN] failed to persist theme %s: %v", c.theme, err)
	}
}

// Theme returns the current theme.
func (c *Controller) Theme() enum.Theme { return c.theme }

// State returns the readiness of the controller.
func (c *Controller) State() enum.Readiness { return c.state }

// Ready reports whether Resolve has completed and the toggle control may be rendered.
func (c *Controller) Ready() bool { return c.state == enum.ReadinessReady }

// Env combines a store and a system preference into an Environment.
func Env(st Store, sp SystemPreference) Environment {
	return env{Store: st, SystemPreference: sp}
}

type env struct {
	Store
	SystemPreference
}

// Marker is a Root recording the theme marker, used where the root is rendered later.
type Marker struct {
	dark bool
}

// MarkDark sets or clears the dark marker.
func (m *Marker) MarkDark(dark bool) { m.dark = dark }

// Dark reports whether the dark marker is present.
func (m *Marker) Dark() bool { return m.dark }

// Class returns the root class attribute value for the marker.
func (m *Marker) Class() string {
	if m.dark {
		return "dark"
	}
	return ""
}
