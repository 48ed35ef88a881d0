package domain

import "errors"

var (
	ErrTransport          = errors.New("backend request failed")
	ErrParse              = errors.New("malformed backend response")
	ErrColorNotFound      = errors.New("color not found")
	ErrSyncAlreadyRunning = errors.New("poll sync is already running")
)
