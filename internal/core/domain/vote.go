package domain

type VoteReceipt struct {
	Message  string `json:"message"`
	Color    string `json:"color,omitempty"`
	NewCount int64  `json:"new_count"`
}
