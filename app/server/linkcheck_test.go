package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/linkhub/app/links"
)

func TestLinkChecker_CheckLinks(t *testing.T) {
	healthySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthySrv.Close()

	unhealthySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer unhealthySrv.Close()

	lc := NewLinkChecker([]links.Link{
		{ID: 1, Label: "up", URL: healthySrv.URL},
		{ID: 2, Label: "down", URL: unhealthySrv.URL},
		{ID: 3, Label: "gone", URL: "http://127.0.0.1:59999"},
	}, LinkCheckerConfig{Interval: time.Hour, Timeout: 500 * time.Millisecond})

	before := lc.Statuses()
	require.Len(t, before, 3)
	for _, st := range before {
		assert.False(t, st.Checked, "link %d not checked yet", st.ID)
	}

	lc.checkLinks(context.Background())
	after := lc.Statuses()
	require.Len(t, after, 3)

	assert.Equal(t, 1, after[0].ID)
	assert.True(t, after[0].Checked)
	assert.True(t, after[0].Healthy)
	assert.Equal(t, http.StatusOK, after[0].StatusCode)

	assert.Equal(t, 2, after[1].ID)
	assert.False(t, after[1].Healthy)
	assert.Equal(t, http.StatusInternalServerError, after[1].StatusCode)

	assert.Equal(t, 3, after[2].ID)
	assert.True(t, after[2].Checked)
	assert.False(t, after[2].Healthy)
	assert.Zero(t, after[2].StatusCode)
	assert.False(t, after[2].CheckedAt.IsZero())
}

func TestLinkChecker_SameIDDifferentLinks(t *testing.T) {
	upSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upSrv.Close()
	downSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer downSrv.Close()

	lc := NewLinkChecker([]links.Link{
		{ID: 1, Label: "up", URL: upSrv.URL},
		{ID: 1, Label: "down", URL: downSrv.URL},
	}, LinkCheckerConfig{Interval: time.Hour, Timeout: time.Second})
	lc.checkLinks(context.Background())

	st := lc.Statuses()
	require.Len(t, st, 2)
	assert.Equal(t, upSrv.URL, st[0].URL)
	assert.True(t, st[0].Healthy)
	assert.Equal(t, http.StatusOK, st[0].StatusCode)
	assert.Equal(t, downSrv.URL, st[1].URL)
	assert.False(t, st[1].Healthy)
	assert.Equal(t, http.StatusInternalServerError, st[1].StatusCode)
}

func TestLinkChecker_CanceledCheckKeepsLastResult(t *testing.T) {
	var block atomic.Bool
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if block.Load() {
			select {
			case started <- struct{}{}:
			default:
			}
			select {
			case <-r.Context().Done():
			case <-release:
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(release)

	lc := NewLinkChecker([]links.Link{{ID: 1, URL: srv.URL}}, LinkCheckerConfig{Interval: time.Hour, Timeout: 5 * time.Second})
	lc.checkLinks(context.Background())
	first := lc.Statuses()[0]
	require.True(t, first.Healthy)

	block.Store(true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
		}
		cancel()
	}()
	lc.checkLinks(ctx)
	require.Error(t, ctx.Err())

	st := lc.Statuses()[0]
	assert.True(t, st.Healthy)
	assert.Equal(t, http.StatusOK, st.StatusCode)
	assert.Equal(t, first.CheckedAt, st.CheckedAt)
}

func TestLinkChecker_CheckEndpoint(t *testing.T) {
	lc := NewLinkChecker(nil, LinkCheckerConfig{Timeout: time.Second})

	t.Run("returns status code", func(t *testing.T) {
		for _, code := range []int{200, 204, 404, 503} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(code)
			}))
			assert.Equal(t, code, lc.checkEndpoint(context.Background(), srv.URL))
			srv.Close()
		}
	})

	t.Run("unreachable endpoint returns zero", func(t *testing.T) {
		assert.Zero(t, lc.checkEndpoint(context.Background(), "http://127.0.0.1:59999"))
	})

	t.Run("invalid url returns zero", func(t *testing.T) {
		assert.Zero(t, lc.checkEndpoint(context.Background(), "not-a-url"))
	})
}

func TestLinkChecker_Run(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	lc := NewLinkChecker([]links.Link{{ID: 1, URL: srv.URL}}, LinkCheckerConfig{
		Interval: 20 * time.Millisecond,
		Timeout:  time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		lc.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return hits.Load() >= 2 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "link checker did not stop within timeout")
	}
	assert.True(t, lc.Statuses()[0].Healthy)
}
