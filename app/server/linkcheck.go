package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/linkhub/app/links"
)

// LinkCheckerConfig holds configuration for the link checker.
type LinkCheckerConfig struct {
	Interval time.Duration // how often to check every link
	Timeout  time.Duration // timeout for a single link request
}

// LinkChecker runs background reachability checks for catalogue links.
type LinkChecker struct {
	links      []links.Link
	cfg        LinkCheckerConfig
	httpClient *http.Client
	wg         sync.WaitGroup

	statusMu sync.RWMutex
	status   []links.Status // by catalogue position
}

// NewLinkChecker creates a new LinkChecker instance.
func NewLinkChecker(ll []links.Link, cfg LinkCheckerConfig) *LinkChecker {
	return &LinkChecker{
		links: ll,
		cfg:   cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		status: initialStatus(ll),
	}
}

func initialStatus(ll []links.Link) []links.Status {
	res := make([]links.Status, len(ll))
	for i, l := range ll {
		res[i] = links.Status{ID: l.ID, URL: l.URL}
	}
	return res
}

// Run checks all links right away and then every interval, blocks until context is canceled.
func (c *LinkChecker) Run(ctx context.Context) {
	log.Printf("[INFO] starting link checker, %d links, interval=%v", len(c.links), c.cfg.Interval)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.checkLinks(ctx)

		ticker := time.NewTicker(c.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.checkLinks(ctx)
			}
		}
	}()

	<-ctx.Done()
	c.wg.Wait()
	log.Printf("[INFO] link checker stopped")
}

// Statuses returns the last known status of every link in catalogue order.
// Links not checked yet are reported with Checked=false.
func (c *LinkChecker) Statuses() []links.Status {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()

	res := make([]links.Status, len(c.status))
	copy(res, c.status)
	return res
}

// checkLinks polls every link once and records the result.
func (c *LinkChecker) checkLinks(ctx context.Context) {
	for i, l := range c.links {
		if ctx.Err() != nil {
			return
		}
		code := c.checkEndpoint(ctx, l.URL)
		if ctx.Err() != nil {
			return // canceled mid-request, keep the last real result
		}
		healthy := code >= 200 && code < 300

		c.statusMu.Lock()
		prev := c.status[i]
		c.status[i] = links.Status{ID: l.ID, URL: l.URL, Checked: true, Healthy: healthy, StatusCode: code, CheckedAt: time.Now()}
		c.statusMu.Unlock()

		if !prev.Checked || prev.Healthy != healthy {
			status := "healthy"
			if !healthy {
				status = "unhealthy"
			}
			log.Printf("[DEBUG] link %d (%s) is now %s, code=%d", l.ID, l.URL, status, code)
		}
	}
}

// checkEndpoint performs an HTTP GET request and returns the response status code, 0 if unreachable.
func (c *LinkChecker) checkEndpoint(ctx context.Context, url string) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		log.Printf("[DEBUG] failed to create request for %s: %v", url, err)
		return 0
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[DEBUG] link check failed for %s: %v", url, err)
		return 0
	}
	defer resp.Body.Close()
	return resp.StatusCode
}
