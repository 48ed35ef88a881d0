package domain

import "fmt"

type StatusKind string

const (
	StatusLoading StatusKind = "loading"
	StatusPending StatusKind = "pending"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

const (
	MessageLoading       = "Loading poll data..."
	MessageFetchSucceeded = "Poll results updated!"
	MessageFetchFailed   = "Error fetching votes. Check backend connection."
	MessageVoteFailed    = "Error casting vote. Please try again."
)

// Status describes the outcome of the latest fetch or vote.
type Status struct {
	Text string     `json:"text"`
	Kind StatusKind `json:"kind"`
}

func LoadingStatus() Status {
	return Status{Text: MessageLoading, Kind: StatusLoading}
}

func FetchSucceededStatus() Status {
	return Status{Text: MessageFetchSucceeded, Kind: StatusSuccess}
}

func FetchFailedStatus() Status {
	return Status{Text: MessageFetchFailed, Kind: StatusError}
}

func VotePendingStatus(color string) Status {
	return Status{Text: fmt.Sprintf("Casting vote for %s...", color), Kind: StatusPending}
}

func VoteSucceededStatus(message string) Status {
	return Status{Text: message, Kind: StatusSuccess}
}

func VoteFailedStatus() Status {
	return Status{Text: MessageVoteFailed, Kind: StatusError}
}
