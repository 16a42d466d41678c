// Package links holds the ordered catalogue of outbound links rendered by the hub.
package links

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Link is a single outbound navigation target.
type Link struct {
	ID    int    `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Catalogue is the hub content: heading, ordered links and the profile link.
type Catalogue struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Links    []Link `yaml:"links" json:"links"`
	Profile  Link   `yaml:"profile" json:"profile"`
}

// Default returns the compiled-in catalogue.
func Default() Catalogue {
	return Catalogue{
		Title:    "My Works",
		Subtitle: "Explore my collection of projects",
		Links: []Link{
			{ID: 1, Label: "Portfolio", URL: "https://portfolio-sigma-self-15.vercel.app/"},
			{ID: 2, Label: "Dashboard", URL: "https://dashboard-eta-eight-19.vercel.app/"},
			{ID: 3, Label: "Game", URL: "https://java-script-platformer-game.vercel.app/"},
			{ID: 4, Label: "Final", URL: "https://v0-fitness-tracker-app-5zo1.vercel.app/"},
		},
		Profile: Link{Label: "GitHub Profile", URL: "https://github.com/monstercat16"},
	}
}

// Load reads a catalogue from a yaml file. Empty path returns Default.
// Missing title, subtitle or profile are taken from Default.
func Load(path string) (Catalogue, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return Catalogue{}, fmt.Errorf("failed to read links file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a yaml catalogue and fills defaults for missing fields.
func Parse(data []byte) (Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalogue{}, fmt.Errorf("failed to parse links: %w", err)
	}

	def := Default()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Subtitle == "" {
		c.Subtitle = def.Subtitle
	}
	if c.Profile.URL == "" {
		c.Profile = def.Profile
	}
	if c.Profile.Label == "" {
		c.Profile.Label = def.Profile.Label
	}

	if len(c.Links) == 0 {
		return Catalogue{}, errors.New("links file has no links")
	}
	// explicit ids are kept, missing ones take the lowest free value
	used := make(map[int]bool, len(c.Links))
	for i, l := range c.Links {
		switch {
		case l.ID < 0:
			return Catalogue{}, fmt.Errorf("link #%d has negative id %d", i+1, l.ID)
		case l.ID > 0 && used[l.ID]:
			return Catalogue{}, fmt.Errorf("duplicate link id %d", l.ID)
		}
		used[l.ID] = l.ID > 0
	}
	next := 1
	for i := range c.Links {
		if c.Links[i].ID == 0 {
			for used[next] {
				next++
			}
			c.Links[i].ID = next
			used[next] = true
		}
		if strings.TrimSpace(c.Links[i].Label) == "" {
			return Catalogue{}, fmt.Errorf("link #%d has no label", i+1)
		}
		if err := checkURL(c.Links[i].URL); err != nil {
			return Catalogue{}, fmt.Errorf("link %q: %w", c.Links[i].Label, err)
		}
	}
	if err := checkURL(c.Profile.URL); err != nil {
		return Catalogue{}, fmt.Errorf("profile link: %w", err)
	}
	return c, nil
}

// checkURL accepts absolute http and https urls only.
func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
