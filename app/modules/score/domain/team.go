package scoredomain

import (
	"errors"
	"fmt"
	"strings"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	handicapdomain "github.com/Black-And-White-Club/golf-league/app/modules/handicap/domain"
)

// TeamFormat is a two-or-more player match format.
type TeamFormat string

const (
	FormatBestBall TeamFormat = "BEST_BALL"
	FormatScramble TeamFormat = "SCRAMBLE"
)

var ErrUnknownTeamFormat = errors.New("unknown team format")

// ParseTeamFormat accepts BEST_BALL or SCRAMBLE in any case; "best ball" and
// "best-ball" are also accepted.
func ParseTeamFormat(s string) (TeamFormat, error) {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToUpper(strings.TrimSpace(s)))
	switch TeamFormat(norm) {
	case FormatBestBall:
		return FormatBestBall, nil
	case FormatScramble:
		return FormatScramble, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTeamFormat, s)
	}
}

// Default allowances for team play.
const (
	BestBallAllowance       = 0.85
	ScrambleLowerAllowance  = 0.35
	ScrambleHigherAllowance = 0.15
)

// TeamResult is either a CompleteTeamResult or an IncompleteTeamResult.
type TeamResult interface {
	isTeamResult()
}

// CompleteTeamResult is a team's scored round.
type CompleteTeamResult struct {
	Format          TeamFormat
	PlayingHandicap int
	FrontGross      int
	BackGross       int
	TotalGross      int
	TotalNet        int
	NotableHoles    NotableHoles
}

// IncompleteTeamResult is the result for a team missing a complete card.
type IncompleteTeamResult struct{}

func (CompleteTeamResult) isTeamResult()   {}
func (IncompleteTeamResult) isTeamResult() {}

// BestBallMember is one partner in a best-ball team.
type BestBallMember struct {
	HandicapIndex float64
	Scorecard     Scorecard
	Tee           coursedomain.Tee
}

// GenerateBestBallResult scores a best-ball team: each hole counts the lowest
// adjusted score among the members. The team plays off the lowest member
// playing handicap at allowance.
func GenerateBestBallResult(members []BestBallMember, course coursedomain.Course, allowance float64) (TeamResult, error) {
	if len(members) < 2 {
		return nil, fmt.Errorf("%w: best ball needs at least 2 players, got %d", ErrTeamSize, len(members))
	}

	var (
		best     [coursedomain.HoleCount]int
		handicap int
	)
	for i, m := range members {
		if err := handicapdomain.ValidateIndex(m.HandicapIndex); err != nil {
			return nil, fmt.Errorf("member %d: %w", i+1, err)
		}
		card, ok := m.Scorecard.(CompleteScorecard)
		if !ok {
			return IncompleteTeamResult{}, nil
		}

		adjusted, err := AdjustScorecard(card, course, NewNotableHoleTracker())
		if err != nil {
			return nil, err
		}
		ph, err := handicapdomain.PlayingHandicap(m.HandicapIndex, m.Tee.Rating, m.Tee.Slope, course.Par(), allowance)
		if err != nil {
			return nil, err
		}

		if i == 0 || ph < handicap {
			handicap = ph
		}
		for h, strokes := range adjusted.strokes {
			if i == 0 || strokes < best[h] {
				best[h] = strokes
			}
		}
	}

	return completeTeamResult(FormatBestBall, CompleteScorecard{strokes: best}, course, handicap)
}

// ScrambleInput is a two-person scramble team's round.
type ScrambleInput struct {
	Indices         [2]float64
	Scorecard       Scorecard
	Course          coursedomain.Course
	Tee             coursedomain.Tee
	LowerAllowance  float64
	HigherAllowance float64
}

// GenerateScrambleResult scores a two-person scramble from the team's single card.
func GenerateScrambleResult(in ScrambleInput) (TeamResult, error) {
	for _, index := range in.Indices {
		if err := handicapdomain.ValidateIndex(index); err != nil {
			return nil, err
		}
	}
	card, ok := in.Scorecard.(CompleteScorecard)
	if !ok {
		return IncompleteTeamResult{}, nil
	}

	handicap, err := handicapdomain.TwoPersonScramblePlayingHandicap(
		in.Indices, in.Tee.Rating, in.Tee.Slope, in.Course.Par(), in.LowerAllowance, in.HigherAllowance)
	if err != nil {
		return nil, err
	}

	return completeTeamResult(FormatScramble, card, in.Course, handicap)
}

func completeTeamResult(format TeamFormat, card CompleteScorecard, course coursedomain.Course, handicap int) (TeamResult, error) {
	tracker := NewNotableHoleTracker()
	adjusted, err := AdjustScorecard(card, course, tracker)
	if err != nil {
		return nil, err
	}
	if err := ClassifyHoles(adjusted, course, tracker); err != nil {
		return nil, err
	}

	gross := adjusted.Total()
	return CompleteTeamResult{
		Format:          format,
		PlayingHandicap: handicap,
		FrontGross:      adjusted.Front(),
		BackGross:       adjusted.Back(),
		TotalGross:      gross,
		TotalNet:        gross - handicap,
		NotableHoles:    tracker.Freeze(),
	}, nil
}
