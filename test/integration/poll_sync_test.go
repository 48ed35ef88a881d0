package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/colorpoll/internal/core/domain"
)

type talliesBody struct {
	Status struct {
		Text string `json:"text"`
		Kind string `json:"kind"`
	} `json:"status"`
	Tallies []struct {
		Color string `json:"color"`
		Count int64  `json:"count"`
	} `json:"tallies"`
}

func (a *testApp) tallies(t *testing.T) talliesBody {
	t.Helper()

	resp, err := a.Client.Get(a.Dashboard.URL + "/api/tallies")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body talliesBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func (a *testApp) vote(t *testing.T, color string) {
	t.Helper()

	resp, err := a.Client.Post(a.Dashboard.URL+"/vote/"+color, "application/x-www-form-urlencoded", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestPollSync_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, "Red", "Green", "Blue", "Yellow")
	defer app.Teardown(t)

	app.Backend.set("Red", 3)
	app.Backend.set("Blue", 5)

	// 1. Start polling and wait for the first refresh
	require.NoError(t, app.Sync.Start(context.Background()))
	require.Eventually(t, func() bool {
		return app.Sync.Snapshot().Status.Kind == domain.StatusSuccess
	}, 2*time.Second, 5*time.Millisecond)

	body := app.tallies(t)
	require.Len(t, body.Tallies, 4)
	assert.Equal(t, "Red", body.Tallies[0].Color)
	assert.Equal(t, int64(3), body.Tallies[0].Count)
	assert.Equal(t, "Yellow", body.Tallies[3].Color)
	assert.Equal(t, "Poll results updated!", body.Status.Text)

	// 2. Vote through the dashboard
	app.vote(t, "Red")

	// a poll dispatched before the vote may still settle after it
	assert.Eventually(t, func() bool {
		n, _ := app.Sync.Snapshot().Tally.Count("Red")
		return n == 4
	}, 2*time.Second, 5*time.Millisecond)

	// 3. Other voters are picked up by the next poll
	app.Backend.set("Blue", 9)
	assert.Eventually(t, func() bool {
		n, _ := app.Sync.Snapshot().Tally.Count("Blue")
		return n == 9
	}, 2*time.Second, 5*time.Millisecond)

	// 4. Dashboard page lists the colors in backend order
	resp, err := app.Client.Get(app.Dashboard.URL + "/")
	require.NoError(t, err)
	page, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(page), "Vote for Green")
}

func TestPollSync_UnknownColor(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, "Red", "Blue")
	defer app.Teardown(t)

	app.Sync.FetchTallies(context.Background())
	before := app.Sync.Snapshot().Tally

	app.vote(t, "Purple")

	snap := app.Sync.Snapshot()
	assert.True(t, before.Equal(snap.Tally))
	assert.Equal(t, domain.MessageVoteFailed, snap.Status.Text)
}

func TestPollSync_BackendOutageKeepsLastTally(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, "Red", "Blue")
	defer app.Teardown(t)

	app.Backend.set("Red", 2)
	require.NoError(t, app.Sync.Start(context.Background()))
	require.Eventually(t, func() bool {
		n, _ := app.Sync.Snapshot().Tally.Count("Red")
		return n == 2
	}, 2*time.Second, 5*time.Millisecond)

	app.Backend.down.Store(true)
	require.Eventually(t, func() bool {
		return app.Sync.Snapshot().Status.Text == domain.MessageFetchFailed
	}, 2*time.Second, 5*time.Millisecond)

	n, _ := app.Sync.Snapshot().Tally.Count("Red")
	assert.Equal(t, int64(2), n)

	// the loop survives the outage
	app.Backend.down.Store(false)
	assert.Eventually(t, func() bool {
		return app.Sync.Snapshot().Status.Text == domain.MessageFetchSucceeded
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPollSync_NoRequestsAfterTeardown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t, "Red")
	defer app.Teardown(t)

	require.NoError(t, app.Sync.Start(context.Background()))
	require.Eventually(t, func() bool { return app.Backend.requests.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

	app.Sync.Stop()
	stoppedAt := app.Backend.requests.Load()

	time.Sleep(5 * testPollInterval)
	assert.Equal(t, stoppedAt, app.Backend.requests.Load())
}
