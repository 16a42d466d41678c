package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/linkhub/app/enum"
	"github.com/umputun/linkhub/app/links"
	"github.com/umputun/linkhub/app/server"
	"github.com/umputun/linkhub/app/store"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	Links string `long:"links" env:"LINKHUB_LINKS" description:"yaml file with the link catalogue (built-in list if empty)"`

	Server struct {
		Address          string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout      time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout     time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"30s" description:"write timeout"`
		IdleTimeout      time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout  time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" description:"graceful shutdown timeout"`
		BaseURL          string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /hub)"`
		RequestsPerSec   int64         `long:"rps" env:"RPS" default:"1000" description:"max requests per second"`
		BodySizeLimit    int64         `long:"body-limit" env:"BODY_LIMIT" default:"65536" description:"max request body size in bytes"`
		LinkCheck        time.Duration `long:"link-check" env:"LINK_CHECK" default:"0s" description:"link reachability check interval, 0 disables"`
		LinkCheckTimeout time.Duration `long:"link-check-timeout" env:"LINK_CHECK_TIMEOUT" default:"10s" description:"timeout for a single link check"`
	} `group:"server" namespace:"server" env-namespace:"LINKHUB_SERVER"`

	Store struct {
		Type      string `long:"type" env:"TYPE" choice:"cookie" choice:"db" default:"cookie" description:"where theme preferences are kept"`
		DB        string `long:"db" env:"DB" default:"linkhub.db" description:"database URL (sqlite file or postgres://...)"`
		CacheSize int    `long:"cache-size" env:"CACHE_SIZE" default:"1000" description:"max visitors kept in the preference cache"`
	} `group:"store" namespace:"store" env-namespace:"LINKHUB_STORE"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	storage, err := enum.ParseStorage(s.Store.Type)
	if err != nil {
		return fmt.Errorf("invalid storage type: %w", err)
	}

	catalogue, err := links.Load(s.Links)
	if err != nil {
		return fmt.Errorf("failed to load links: %w", err)
	}

	log.Printf("[INFO] starting linkhub server on %s, %d links, %s storage", s.Server.Address, len(catalogue.Links), storage)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}

	// preference store is needed for db storage only
	var prefStore server.PreferenceStore
	if storage == enum.StorageDB {
		cached, storeErr := openStore(s.Store.DB, s.Store.CacheSize)
		if storeErr != nil {
			return fmt.Errorf("failed to initialize store: %w", storeErr)
		}
		defer cached.Close()

		if counts, cntErr := cached.Count(ctx); cntErr == nil {
			log.Printf("[INFO] stored preferences: %d dark, %d light", counts[enum.ThemeDark.String()], counts[enum.ThemeLight.String()])
		}
		prefStore = cached
	}

	// initialize and start HTTP server
	srv, err := server.New(prefStore, catalogue, server.Config{
		Address:           s.Server.Address,
		ReadTimeout:       s.Server.ReadTimeout,
		WriteTimeout:      s.Server.WriteTimeout,
		IdleTimeout:       s.Server.IdleTimeout,
		ShutdownTimeout:   s.Server.ShutdownTimeout,
		Version:           revision,
		BaseURL:           baseURL,
		Storage:           storage,
		LinkCheckInterval: s.Server.LinkCheck,
		LinkCheckTimeout:  s.Server.LinkCheckTimeout,
		BodySizeLimit:     s.Server.BodySizeLimit,
		RequestsPerSec:    s.Server.RequestsPerSec,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// StatsCmd implements the stats subcommand
type StatsCmd struct {
	DB    string `long:"db" env:"LINKHUB_STORE_DB" default:"linkhub.db" description:"database URL (sqlite file or postgres://...)"`
	Debug bool   `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer
}

// Execute runs the stats command
func (c *StatsCmd) Execute(_ []string) error {
	setupLogs(c.Debug)
	if c.out == nil {
		c.out = os.Stdout
	}

	st, err := store.New(c.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer st.Close()

	counts, err := st.Count(context.Background())
	if err != nil {
		return fmt.Errorf("failed to count preferences: %w", err)
	}

	// rows with values outside the known themes are reported as other
	var total int
	for _, n := range counts {
		total += n
	}
	other := total
	for _, t := range enum.ThemeValues {
		fmt.Fprintf(c.out, "%s: %d\n", t, counts[t.String()])
		other -= counts[t.String()]
	}
	if other > 0 {
		fmt.Fprintf(c.out, "other: %d\n", other)
	}
	fmt.Fprintf(c.out, "total: %d\n", total)
	return nil
}

// openStore opens the preference database behind an LRU cache.
func openStore(dbURL string, cacheSize int) (*store.Cached, error) {
	db, err := store.New(dbURL)
	if err != nil {
		return nil, err
	}
	cached, err := store.NewCached(db, cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return cached, nil
}
