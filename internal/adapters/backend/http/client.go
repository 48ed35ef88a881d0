package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/colorpoll/internal/core/domain"
	"github.com/vncsmyrnk/colorpoll/internal/core/ports"
)

const RequestIDHeader = "X-Request-ID"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

type client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient returns a PollAPI talking to the poll backend at baseURL.
func NewClient(baseURL string, httpClient *http.Client, log *slog.Logger) (ports.PollAPI, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q: must be an absolute http(s) url", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}

	return &client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		httpClient: httpClient,
		log:        log.With(slog.String("component", "backend_client")),
	}, nil
}

type voteResponse struct {
	Message  *string `json:"message"`
	Color    string  `json:"color"`
	NewCount *int64  `json:"new_count"`
}

func (c *client) FetchTallies(ctx context.Context) (domain.Tally, error) {
	body, err := c.send(ctx, http.MethodGet, c.baseURL+"/votes")
	if err != nil {
		return domain.Tally{}, err
	}

	var tally domain.Tally
	if err := tally.UnmarshalJSON(body); err != nil {
		return domain.Tally{}, fmt.Errorf("%w: failed to decode tallies: %w", domain.ErrParse, err)
	}

	return tally, nil
}

func (c *client) CastVote(ctx context.Context, color string) (*domain.VoteReceipt, error) {
	body, err := c.send(ctx, http.MethodPost, c.baseURL+"/vote/"+url.PathEscape(color))
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %w", domain.ErrColorNotFound, err)
		}
		return nil, err
	}

	var resp voteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode vote response: %w", domain.ErrParse, err)
	}
	if resp.Message == nil || resp.NewCount == nil {
		return nil, fmt.Errorf("%w: vote response is missing message or new_count", domain.ErrParse)
	}
	if *resp.NewCount < 0 {
		return nil, fmt.Errorf("%w: vote response has a negative new_count", domain.ErrParse)
	}

	return &domain.VoteReceipt{
		Message:  *resp.Message,
		Color:    resp.Color,
		NewCount: *resp.NewCount,
	}, nil
}

func (c *client) Ping(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodGet, c.baseURL+"/")
	return err
}

type statusError struct {
	method   string
	endpoint string
	code     int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.method, e.endpoint, e.code)
}

func (e *statusError) Unwrap() error {
	return domain.ErrTransport
}

// send performs the request and returns the body of a 2xx response.
func (c *client) send(ctx context.Context, method, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	log := c.log.With(
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("url", endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("backend unreachable", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, method, endpoint, err)
	}
	defer resp.Body.Close()

	log.Debug("backend responded", slog.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &statusError{method: method, endpoint: endpoint, code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", domain.ErrTransport, err)
	}

	return body, nil
}
