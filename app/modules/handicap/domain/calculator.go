package handicapdomain

import (
	"errors"
	"fmt"
	"math"
)

// StandardSlope is the slope rating of a course of average difficulty.
const StandardSlope = 113.0

// Handicap index bounds. Plus handicaps are negative.
const (
	MinIndex = -10.0
	MaxIndex = 54.0
)

var (
	ErrAllowanceOutOfRange = errors.New("allowance out of range")
	ErrInvalidIndex        = errors.New("invalid handicap index")
)

// ValidateIndex rejects non-finite indexes and those outside [MinIndex, MaxIndex].
func ValidateIndex(index float64) error {
	if math.IsNaN(index) || math.IsInf(index, 0) || index < MinIndex || index > MaxIndex {
		return fmt.Errorf("%w: %v", ErrInvalidIndex, index)
	}
	return nil
}

// Round rounds half to even. Every handicap figure in the league goes
// through this function so x.5 boundaries resolve the same way everywhere.
func Round(x float64) int {
	return int(math.RoundToEven(x))
}

// RoundTenth rounds to one decimal place, half to even.
func RoundTenth(x float64) float64 {
	return math.RoundToEven(x*10) / 10
}

func unroundedCourseHandicap(index, rating float64, slope, par int) float64 {
	return index*float64(slope)/StandardSlope + (rating - float64(par))
}

// CourseHandicap converts a handicap index into strokes for a course and tee.
func CourseHandicap(index, rating float64, slope, par int) int {
	return Round(unroundedCourseHandicap(index, rating, slope, par))
}

// NineHoleCourseHandicap applies half the index against nine-hole rating, slope and par.
func NineHoleCourseHandicap(index, rating float64, slope, par int) int {
	return CourseHandicap(index/2, rating, slope, par)
}

// PlayingHandicap scales the unrounded course handicap by allowance before rounding.
func PlayingHandicap(index, rating float64, slope, par int, allowance float64) (int, error) {
	if allowance < 0 || allowance > 1 || math.IsNaN(allowance) {
		return 0, fmt.Errorf("%w: %v", ErrAllowanceOutOfRange, allowance)
	}
	return Round(unroundedCourseHandicap(index, rating, slope, par) * allowance), nil
}

// TwoPersonScramblePlayingHandicap sums the lower index's playing handicap at
// lowerAllowance and the higher index's at higherAllowance.
func TwoPersonScramblePlayingHandicap(indices [2]float64, rating float64, slope, par int, lowerAllowance, higherAllowance float64) (int, error) {
	lower, higher := indices[0], indices[1]
	if higher < lower {
		lower, higher = higher, lower
	}

	low, err := PlayingHandicap(lower, rating, slope, par, lowerAllowance)
	if err != nil {
		return 0, fmt.Errorf("lower handicap: %w", err)
	}
	high, err := PlayingHandicap(higher, rating, slope, par, higherAllowance)
	if err != nil {
		return 0, fmt.Errorf("higher handicap: %w", err)
	}
	return low + high, nil
}

// ScoringDifferential is (113 / slope) * (gross - rating), to one decimal.
func ScoringDifferential(gross int, rating float64, slope int) float64 {
	return RoundTenth(StandardSlope / float64(slope) * (float64(gross) - rating))
}
