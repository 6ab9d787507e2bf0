package coursedomain

import (
	"errors"
	"fmt"
	"strings"
)

// HoleCount is the number of holes on every course the league plays.
const HoleCount = 18

const (
	MinSlope  = 55
	MaxSlope  = 155
	MinRating = 60.0
	MaxRating = 80.0
)

var (
	ErrInvalidCourse  = errors.New("invalid course")
	ErrInvalidHole    = errors.New("hole number out of range")
	ErrTeeNotFound    = errors.New("tee not found")
	ErrUnknownGender  = errors.New("unknown gender")
	ErrNineHoleNotSet = errors.New("nine-hole rating not configured for tee")
)

// Gender selects which set of tees a player plays from.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ParseGender accepts "male"/"female" and the single-letter forms used on sign-up sheets.
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MALE", "M":
		return GenderMale, nil
	case "FEMALE", "F":
		return GenderFemale, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
	}
}

// Tee holds the USGA rating for one set of tee boxes.
// The nine-hole fields are optional; zero means not rated.
type Tee struct {
	Name        string
	Rating      float64
	Slope       int
	FrontRating float64
	FrontSlope  int
	BackRating  float64
	BackSlope   int
}

// ValidateSlope reports whether slope is within [MinSlope, MaxSlope].
func ValidateSlope(slope int) error {
	if slope < MinSlope || slope > MaxSlope {
		return fmt.Errorf("%w: slope %d outside [%d,%d]", ErrInvalidCourse, slope, MinSlope, MaxSlope)
	}
	return nil
}

// Validate checks the slope and rating bounds.
func (t Tee) Validate() error {
	if err := ValidateSlope(t.Slope); err != nil {
		return fmt.Errorf("tee %q: %w", t.Name, err)
	}
	if t.Rating < MinRating || t.Rating > MaxRating {
		return fmt.Errorf("%w: tee %q rating %.1f outside [%.0f,%.0f]", ErrInvalidCourse, t.Name, t.Rating, MinRating, MaxRating)
	}
	for _, s := range []int{t.FrontSlope, t.BackSlope} {
		if s != 0 && (s < MinSlope || s > MaxSlope) {
			return fmt.Errorf("%w: tee %q nine-hole slope %d outside [%d,%d]", ErrInvalidCourse, t.Name, s, MinSlope, MaxSlope)
		}
	}
	return nil
}

// Course is an 18-hole course with rated tees per gender.
type Course struct {
	Name     string
	HolePars [HoleCount]int
	Tees     map[Gender]map[string]Tee
}

// NewCourse builds a course, validating hole pars and tee ratings.
func NewCourse(name string, pars []int, tees map[Gender][]Tee) (Course, error) {
	if strings.TrimSpace(name) == "" {
		return Course{}, fmt.Errorf("%w: empty course name", ErrInvalidCourse)
	}
	if len(pars) != HoleCount {
		return Course{}, fmt.Errorf("%w: %q has %d holes, want %d", ErrInvalidCourse, name, len(pars), HoleCount)
	}

	c := Course{Name: name, Tees: make(map[Gender]map[string]Tee, len(tees))}
	for i, p := range pars {
		if p < 3 || p > 5 {
			return Course{}, fmt.Errorf("%w: %q hole %d par %d", ErrInvalidCourse, name, i+1, p)
		}
		c.HolePars[i] = p
	}

	for gender, list := range tees {
		byName := make(map[string]Tee, len(list))
		for _, t := range list {
			if err := t.Validate(); err != nil {
				return Course{}, fmt.Errorf("course %q: %w", name, err)
			}
			if _, dup := byName[t.Name]; dup {
				return Course{}, fmt.Errorf("%w: %q has duplicate %s tee %q", ErrInvalidCourse, name, gender, t.Name)
			}
			byName[t.Name] = t
		}
		c.Tees[gender] = byName
	}

	return c, nil
}

// Par is the sum of all hole pars.
func (c Course) Par() int {
	return c.FrontPar() + c.BackPar()
}

// FrontPar is the par of holes 1-9.
func (c Course) FrontPar() int {
	total := 0
	for _, p := range c.HolePars[:9] {
		total += p
	}
	return total
}

// BackPar is the par of holes 10-18.
func (c Course) BackPar() int {
	total := 0
	for _, p := range c.HolePars[9:] {
		total += p
	}
	return total
}

// HolePar returns the par for a 1-based hole number.
func (c Course) HolePar(hole int) (int, error) {
	if err := ValidateHole(hole); err != nil {
		return 0, err
	}
	return c.HolePars[hole-1], nil
}

// Tee looks up a named tee for the given gender.
func (c Course) Tee(gender Gender, name string) (Tee, error) {
	byName, ok := c.Tees[gender]
	if !ok {
		return Tee{}, fmt.Errorf("%w: course %q has no %s tees", ErrTeeNotFound, c.Name, gender)
	}
	t, ok := byName[name]
	if !ok {
		return Tee{}, fmt.Errorf("%w: course %q has no %s tee %q", ErrTeeNotFound, c.Name, gender, name)
	}
	return t, nil
}

// ValidateHole reports whether hole is a 1-based hole number on an 18-hole course.
func ValidateHole(hole int) error {
	if hole < 1 || hole > HoleCount {
		return fmt.Errorf("%w: %d", ErrInvalidHole, hole)
	}
	return nil
}

// FrontNine returns the rating and slope for holes 1-9.
func (t Tee) FrontNine() (float64, int, error) {
	if t.FrontSlope == 0 || t.FrontRating == 0 {
		return 0, 0, fmt.Errorf("%w: %q front", ErrNineHoleNotSet, t.Name)
	}
	return t.FrontRating, t.FrontSlope, nil
}

// BackNine returns the rating and slope for holes 10-18.
func (t Tee) BackNine() (float64, int, error) {
	if t.BackSlope == 0 || t.BackRating == 0 {
		return 0, 0, fmt.Errorf("%w: %q back", ErrNineHoleNotSet, t.Name)
	}
	return t.BackRating, t.BackSlope, nil
}
