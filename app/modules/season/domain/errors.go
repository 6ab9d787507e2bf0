package seasondomain

import "errors"

var (
	ErrConsistency     = errors.New("season input is inconsistent")
	ErrDuplicatePlayer = errors.New("duplicate player")
	ErrInvalidEvent    = errors.New("invalid event")
	ErrInvalidTeam     = errors.New("invalid team")
	ErrUnknownEvent    = errors.New("event is not configured")
)
