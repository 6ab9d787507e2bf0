package leaderboarddomain

import "errors"

var (
	ErrInvalidRank       = errors.New("invalid rank")
	ErrDisallowedCall    = errors.New("disallowed call on unranked result")
	ErrUnknownEventType  = errors.New("unknown event type")
	ErrDuplicatePlayer   = errors.New("duplicate player")
	ErrMissingPlayer     = errors.New("player missing from event")
	ErrUnsupportedResult = errors.New("unsupported individual result")
)
