package scoredomain

import (
	"fmt"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	handicapdomain "github.com/Black-And-White-Club/golf-league/app/modules/handicap/domain"
)

// IndividualResult is either a CompleteIndividualResult or an
// IncompleteIndividualResult.
type IndividualResult interface {
	isIndividualResult()
}

// CompleteIndividualResult is one player's scored round at one event.
type CompleteIndividualResult struct {
	CourseHandicap    int
	FrontGross        int
	BackGross         int
	TotalGross        int
	TotalNet          int
	ScoreDifferential float64
	NotableHoles      NotableHoles
	Adjusted          CompleteScorecard
}

// IncompleteIndividualResult is the result for a player without a complete scorecard.
type IncompleteIndividualResult struct{}

func (CompleteIndividualResult) isIndividualResult()   {}
func (IncompleteIndividualResult) isIndividualResult() {}

// IndividualInput is everything needed to score one player at one event.
type IndividualInput struct {
	HandicapIndex float64
	Scorecard     Scorecard
	Course        coursedomain.Course
	Tee           coursedomain.Tee
}

// GenerateIndividualResult scores a player's round. An incomplete scorecard
// short-circuits to IncompleteIndividualResult.
func GenerateIndividualResult(in IndividualInput) (IndividualResult, error) {
	if err := handicapdomain.ValidateIndex(in.HandicapIndex); err != nil {
		return nil, err
	}

	var card CompleteScorecard
	switch c := in.Scorecard.(type) {
	case CompleteScorecard:
		card = c
	case IncompleteScorecard:
		return IncompleteIndividualResult{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported scorecard type %T", ErrInvalidScorecard, in.Scorecard)
	}

	tracker := NewNotableHoleTracker()
	adjusted, err := AdjustScorecard(card, in.Course, tracker)
	if err != nil {
		return nil, err
	}
	if err := ClassifyHoles(adjusted, in.Course, tracker); err != nil {
		return nil, err
	}

	courseHandicap := handicapdomain.CourseHandicap(in.HandicapIndex, in.Tee.Rating, in.Tee.Slope, in.Course.Par())
	gross := adjusted.Total()

	return CompleteIndividualResult{
		CourseHandicap:    courseHandicap,
		FrontGross:        adjusted.Front(),
		BackGross:         adjusted.Back(),
		TotalGross:        gross,
		TotalNet:          gross - courseHandicap,
		ScoreDifferential: handicapdomain.ScoringDifferential(gross, in.Tee.Rating, in.Tee.Slope),
		NotableHoles:      tracker.Freeze(),
		Adjusted:          adjusted,
	}, nil
}

// IsComplete reports whether r carries a scored round.
func IsComplete(r IndividualResult) bool {
	_, ok := r.(CompleteIndividualResult)
	return ok
}

// BirdieCount is the number of birdies in r; incomplete results count zero.
func BirdieCount(r IndividualResult) int {
	if c, ok := r.(CompleteIndividualResult); ok {
		return c.NotableHoles.Birdies()
	}
	return 0
}

// EagleCount is the number of eagles in r; incomplete results count zero.
func EagleCount(r IndividualResult) int {
	if c, ok := r.(CompleteIndividualResult); ok {
		return c.NotableHoles.Eagles()
	}
	return 0
}

// AlbatrossCount is the number of albatrosses in r; incomplete results count zero.
func AlbatrossCount(r IndividualResult) int {
	if c, ok := r.(CompleteIndividualResult); ok {
		return c.NotableHoles.Albatrosses()
	}
	return 0
}
