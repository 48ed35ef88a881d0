package ports

import (
	"context"

	"github.com/vncsmyrnk/colorpoll/internal/core/domain"
)

//go:generate mockgen -source=poll_api_ports.go -destination=mocks/mock_poll_api_ports.go -package=mocks

// PollAPI is the backend that owns the poll.
type PollAPI interface {
	FetchTallies(ctx context.Context) (domain.Tally, error)
	CastVote(ctx context.Context, color string) (*domain.VoteReceipt, error)
	Ping(ctx context.Context) error
}
