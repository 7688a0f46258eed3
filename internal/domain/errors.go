package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidTaskID     = errors.New("invalid task id")
	ErrInvalidFilter     = errors.New("invalid filter (want all, active or done)")
	ErrInvalidSort       = errors.New("invalid sort (want id or recent)")
	ErrInvalidPayload    = errors.New("invalid task payload")
	ErrUnsupportedSource = errors.New("unsupported task source")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrConfigExists      = errors.New("config file already exists")
	ErrNoConfigDir       = errors.New("cannot resolve config directory")
)
