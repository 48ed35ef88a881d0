package domain

import "time"

// Snapshot is a detached copy of the client state.
type Snapshot struct {
	Tally     Tally
	Status    Status
	UpdatedAt time.Time
}
