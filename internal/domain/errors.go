package domain

import "errors"

var (
	ErrNoActiveSession    = errors.New("no active session")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNoSessionData      = errors.New("no session available")
	ErrSlotEmpty          = errors.New("storage slot is empty")
	ErrInvalidBackup      = errors.New("invalid backup")
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	ErrInvalidRating      = errors.New("rating out of range")
	ErrUnknownCategory    = errors.New("unknown wheel category")
	ErrDuplicateCategory  = errors.New("duplicate wheel category")
	ErrLastCategory       = errors.New("at least one wheel category is required")
	ErrUnknownPrompt      = errors.New("unknown journal prompt")
	ErrEmptyValue         = errors.New("value is empty")
)
