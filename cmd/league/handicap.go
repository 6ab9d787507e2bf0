package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/urfave/cli/v2"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	coursedb "github.com/Black-And-White-Club/golf-league/app/modules/course/infrastructure/repositories"
	handicapdomain "github.com/Black-And-White-Club/golf-league/app/modules/handicap/domain"
	scoredomain "github.com/Black-And-White-Club/golf-league/app/modules/score/domain"
)

var ErrTeeRequired = errors.New("tee required")

func teeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{Name: "rating", Usage: "course rating of the tee"},
		&cli.IntFlag{Name: "slope", Usage: "slope rating of the tee"},
		&cli.IntFlag{Name: "par", Usage: "course par"},
		&cli.StringFlag{Name: "courses", Usage: "courses YAML file", EnvVars: []string{"LEAGUE_COURSES_FILE"}},
		&cli.StringFlag{Name: "course", Usage: "read rating, slope and par from this course"},
		&cli.StringFlag{Name: "tee", Usage: "tee name on --course"},
		&cli.StringFlag{Name: "gender", Usage: "tee gender on --course (M or F)", Value: "M"},
	}
}

// teeRating is the rating, slope and par a handicap is computed against.
type teeRating struct {
	rating float64
	slope  int
	par    int
}

// resolveTee takes the tee from --course when given, otherwise from the raw
// --rating, --slope and --par flags. side selects a nine ("front" or "back");
// empty means all eighteen holes.
func resolveTee(c *cli.Context, side string) (teeRating, error) {
	if c.IsSet("course") {
		return courseTee(c, side)
	}
	if !c.IsSet("rating") || !c.IsSet("slope") || !c.IsSet("par") {
		return teeRating{}, fmt.Errorf("%w: pass --course and --tee, or --rating, --slope and --par", ErrTeeRequired)
	}

	t := teeRating{rating: c.Float64("rating"), slope: c.Int("slope"), par: c.Int("par")}
	if err := coursedomain.ValidateSlope(t.slope); err != nil {
		return teeRating{}, err
	}
	if math.IsNaN(t.rating) || math.IsInf(t.rating, 0) || t.rating <= 0 {
		return teeRating{}, fmt.Errorf("%w: rating %v", coursedomain.ErrInvalidCourse, t.rating)
	}
	return t, nil
}

func courseTee(c *cli.Context, side string) (teeRating, error) {
	if c.String("courses") == "" || c.String("tee") == "" {
		return teeRating{}, fmt.Errorf("%w: --course needs --courses and --tee", ErrTeeRequired)
	}
	catalog, err := coursedb.LoadYAMLFile(c.String("courses"))
	if err != nil {
		return teeRating{}, err
	}
	course, err := catalog.GetCourse(c.String("course"))
	if err != nil {
		return teeRating{}, err
	}
	gender, err := coursedomain.ParseGender(c.String("gender"))
	if err != nil {
		return teeRating{}, err
	}
	tee, err := course.Tee(gender, c.String("tee"))
	if err != nil {
		return teeRating{}, err
	}

	switch side {
	case "":
		return teeRating{rating: tee.Rating, slope: tee.Slope, par: course.Par()}, nil
	case "front":
		rating, slope, err := tee.FrontNine()
		if err != nil {
			return teeRating{}, err
		}
		return teeRating{rating: rating, slope: slope, par: course.FrontPar()}, nil
	case "back":
		rating, slope, err := tee.BackNine()
		if err != nil {
			return teeRating{}, err
		}
		return teeRating{rating: rating, slope: slope, par: course.BackPar()}, nil
	default:
		return teeRating{}, fmt.Errorf("unknown nine %q, want front or back", side)
	}
}

func indexFlag(c *cli.Context) (float64, error) {
	index := c.Float64("index")
	if err := handicapdomain.ValidateIndex(index); err != nil {
		return 0, err
	}
	return index, nil
}

func newHandicapCommand() *cli.Command {
	return &cli.Command{
		Name:  "handicap",
		Usage: "handicap calculations",
		Subcommands: []*cli.Command{
			{
				Name:  "course",
				Usage: "course or playing handicap for one player",
				Flags: append([]cli.Flag{
					&cli.Float64Flag{Name: "index", Usage: "handicap index", Required: true},
					&cli.Float64Flag{Name: "allowance", Usage: "playing allowance in [0,1]", Value: 1.0},
					&cli.BoolFlag{Name: "nine", Usage: "nine-hole rating, slope and par"},
					&cli.StringFlag{Name: "side", Usage: "nine played with --course and --nine: front or back", Value: "front"},
				}, teeFlags()...),
				Action: func(c *cli.Context) error {
					index, err := indexFlag(c)
					if err != nil {
						return err
					}
					side := ""
					if c.Bool("nine") {
						side = c.String("side")
					}
					tee, err := resolveTee(c, side)
					if err != nil {
						return err
					}

					if c.Bool("nine") {
						fmt.Fprintf(c.App.Writer, "Nine-hole course handicap: %d\n",
							handicapdomain.NineHoleCourseHandicap(index, tee.rating, tee.slope, tee.par))
						return nil
					}
					fmt.Fprintf(c.App.Writer, "Course handicap: %d\n",
						handicapdomain.CourseHandicap(index, tee.rating, tee.slope, tee.par))
					if c.IsSet("allowance") {
						playing, err := handicapdomain.PlayingHandicap(index, tee.rating, tee.slope, tee.par, c.Float64("allowance"))
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "Playing handicap: %d\n", playing)
					}
					return nil
				},
			},
			{
				Name:  "scramble",
				Usage: "two-person scramble team handicap",
				Flags: append([]cli.Flag{
					&cli.Float64SliceFlag{Name: "index", Usage: "handicap index of a partner (twice)", Required: true},
					&cli.Float64Flag{Name: "lower-allowance", Value: scoredomain.ScrambleLowerAllowance},
					&cli.Float64Flag{Name: "higher-allowance", Value: scoredomain.ScrambleHigherAllowance},
				}, teeFlags()...),
				Action: func(c *cli.Context) error {
					indices := c.Float64Slice("index")
					if len(indices) != 2 {
						return fmt.Errorf("%w: scramble needs exactly 2 --index values, got %d", scoredomain.ErrTeamSize, len(indices))
					}
					for _, index := range indices {
						if err := handicapdomain.ValidateIndex(index); err != nil {
							return err
						}
					}
					tee, err := resolveTee(c, "")
					if err != nil {
						return err
					}

					team, err := handicapdomain.TwoPersonScramblePlayingHandicap(
						[2]float64{indices[0], indices[1]},
						tee.rating, tee.slope, tee.par,
						c.Float64("lower-allowance"), c.Float64("higher-allowance"),
					)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Team playing handicap: %d\n", team)
					return nil
				},
			},
			{
				Name:  "differential",
				Usage: "score differential for a round",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "gross", Usage: "adjusted gross score", Required: true},
					&cli.Float64Flag{Name: "rating", Usage: "course rating of the tee", Required: true},
					&cli.IntFlag{Name: "slope", Usage: "slope rating of the tee", Required: true},
				},
				Action: func(c *cli.Context) error {
					gross, slope := c.Int("gross"), c.Int("slope")
					if gross <= 0 {
						return fmt.Errorf("%w: gross %d", scoredomain.ErrInvalidScorecard, gross)
					}
					if err := coursedomain.ValidateSlope(slope); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Score differential: %.1f\n",
						handicapdomain.ScoringDifferential(gross, c.Float64("rating"), slope))
					return nil
				},
			},
		},
	}
}
