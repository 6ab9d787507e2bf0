package scoredomain

import "errors"

var (
	ErrInvalidScorecard        = errors.New("invalid scorecard")
	ErrDuplicateClassification = errors.New("hole already classified")
	ErrInvalidClassification   = errors.New("invalid hole classification")
	ErrTeamSize                = errors.New("invalid team size")
)
