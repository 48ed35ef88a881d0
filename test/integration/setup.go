package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	backendhttp "github.com/vncsmyrnk/colorpoll/internal/adapters/backend/http"
	handlerhttp "github.com/vncsmyrnk/colorpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/colorpoll/internal/core/domain"
	"github.com/vncsmyrnk/colorpoll/internal/core/ports"
	"github.com/vncsmyrnk/colorpoll/internal/core/services"
)

const testPollInterval = 20 * time.Millisecond

// pollBackend behaves like the poll backend: a fixed set of seeded colors,
// 404 for anything else.
type pollBackend struct {
	mu       sync.Mutex
	tally    domain.Tally
	requests atomic.Int64
	down     atomic.Bool
}

func newPollBackend(colors ...string) *pollBackend {
	b := &pollBackend{tally: domain.NewTally()}
	for _, c := range colors {
		b.tally.Set(c, 0)
	}
	return b
}

func (b *pollBackend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b.requests.Add(1)
			if b.down.Load() {
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"msg": "Service is up"})
	})

	r.Get("/votes", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.tally)
	})

	r.Post("/vote/{color}", func(w http.ResponseWriter, r *http.Request) {
		color := chi.URLParam(r, "color")

		b.mu.Lock()
		defer b.mu.Unlock()

		count, ok := b.tally.Count(color)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Color not found"})
			return
		}
		count++
		b.tally.Set(color, count)

		writeJSON(w, http.StatusOK, map[string]any{
			"message":   "Voted for " + color + " successfully",
			"color":     color,
			"new_count": count,
		})
	})

	return r
}

func (b *pollBackend) set(color string, count int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tally.Set(color, count)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

type testApp struct {
	Backend   *pollBackend
	API       *httptest.Server
	Dashboard *httptest.Server
	Sync      ports.SyncService
	Client    *http.Client
}

func setupTestApp(t *testing.T, colors ...string) *testApp {
	t.Helper()

	backend := newPollBackend(colors...)
	apiServer := httptest.NewServer(backend.router())

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	api, err := backendhttp.NewClient(apiServer.URL, apiServer.Client(), log)
	require.NoError(t, err)

	syncService := services.NewSyncService(api, testPollInterval, log)
	dashboard := httptest.NewServer(handlerhttp.NewHandler(
		handlerhttp.NewDashboardHandler(syncService, testPollInterval),
		handlerhttp.NewVoteHandler(syncService),
		nil,
	))

	return &testApp{
		Backend:   backend,
		API:       apiServer,
		Dashboard: dashboard,
		Sync:      syncService,
		Client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (a *testApp) Teardown(t *testing.T) {
	t.Helper()

	a.Sync.Stop()
	a.Dashboard.Close()
	a.API.Close()
}
