package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vncsmyrnk/colorpoll/internal/core/domain"
	"github.com/vncsmyrnk/colorpoll/internal/core/ports"
)

const DefaultPollInterval = 3 * time.Second

type syncService struct {
	api      ports.PollAPI
	interval time.Duration
	log      *slog.Logger

	mu        sync.RWMutex
	tally     domain.Tally
	status    domain.Status
	updatedAt time.Time

	// loopMu serializes Start and Stop.
	loopMu   sync.Mutex
	cancel   context.CancelFunc
	loopDone chan struct{}
	inflight sync.WaitGroup
}

func NewSyncService(api ports.PollAPI, interval time.Duration, log *slog.Logger) ports.SyncService {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = slog.Default()
	}

	return &syncService{
		api:      api,
		interval: interval,
		log:      log.With(slog.String("component", "poll_sync")),
		tally:    domain.NewTally(),
		status:   domain.LoadingStatus(),
	}
}

func (s *syncService) FetchTallies(ctx context.Context) {
	tally, err := s.api.FetchTallies(ctx)
	if err != nil {
		s.log.Warn("failed to fetch tallies", slog.String("kind", errorKind(err)), slog.Any("error", err))
		s.setStatus(domain.FetchFailedStatus())
		return
	}

	s.mu.Lock()
	s.tally = tally.Clone()
	s.status = domain.FetchSucceededStatus()
	s.updatedAt = time.Now()
	s.mu.Unlock()

	s.log.Debug("tallies refreshed", slog.Int("colors", tally.Len()))
}

func (s *syncService) CastVote(ctx context.Context, color string) {
	s.setStatus(domain.VotePendingStatus(color))

	receipt, err := s.api.CastVote(ctx, color)
	if err != nil {
		s.log.Warn("failed to cast vote",
			slog.String("color", color),
			slog.String("kind", errorKind(err)),
			slog.Any("error", err),
		)
		s.setStatus(domain.VoteFailedStatus())
		return
	}

	s.mu.Lock()
	s.tally.Set(color, receipt.NewCount)
	s.status = domain.VoteSucceededStatus(receipt.Message)
	s.mu.Unlock()

	s.log.Info("vote cast", slog.String("color", color), slog.Int64("new_count", receipt.NewCount))
}

func (s *syncService) Start(ctx context.Context) error {
	s.loopMu.Lock()
	defer s.loopMu.Unlock()

	if s.cancel != nil {
		select {
		case <-s.loopDone:
			// parent context ended the previous loop without a Stop
			s.cancel()
			s.inflight.Wait()
		default:
			return domain.ErrSyncAlreadyRunning
		}
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.loopDone = done

	go s.run(loopCtx, done)

	s.log.Info("poll sync started", slog.Duration("interval", s.interval))
	return nil
}

// Stop cancels the polling schedule and waits for fetches that were already
// dispatched to settle. Those fetches are not cancelled.
func (s *syncService) Stop() {
	s.loopMu.Lock()
	defer s.loopMu.Unlock()

	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.loopDone
	s.inflight.Wait()

	s.cancel = nil
	s.loopDone = nil

	s.log.Info("poll sync stopped")
}

func (s *syncService) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Snapshot{
		Tally:     s.tally.Clone(),
		Status:    s.status,
		UpdatedAt: s.updatedAt,
	}
}

func (s *syncService) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.dispatchFetch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.dispatchFetch(ctx)
		}
	}
}

// dispatchFetch runs a fetch on its own goroutine so a slow backend never
// delays the schedule. Overlapping fetches settle in whatever order the
// backend answers; the last one wins.
func (s *syncService) dispatchFetch(ctx context.Context) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.FetchTallies(context.WithoutCancel(ctx))
	}()
}

func (s *syncService) setStatus(status domain.Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrParse):
		return "parse"
	case errors.Is(err, domain.ErrTransport):
		return "transport"
	default:
		return "unknown"
	}
}
