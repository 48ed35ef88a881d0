package ports

import (
	"context"

	"github.com/vncsmyrnk/colorpoll/internal/core/domain"
)

//go:generate mockgen -source=sync_ports.go -destination=mocks/mock_sync_ports.go -package=mocks

// SyncService keeps a local mirror of the backend tallies. FetchTallies and
// CastVote never fail from the caller's point of view: the outcome is
// reported through the snapshot status.
type SyncService interface {
	FetchTallies(ctx context.Context)
	CastVote(ctx context.Context, color string)
	Start(ctx context.Context) error
	Stop()
	Snapshot() domain.Snapshot
}
