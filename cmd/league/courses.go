package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	coursedb "github.com/Black-And-White-Club/golf-league/app/modules/course/infrastructure/repositories"
)

func newCoursesCommand() *cli.Command {
	return &cli.Command{
		Name:  "courses",
		Usage: "course database",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list courses, pars and tees",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "courses", Usage: "courses YAML file", EnvVars: []string{"LEAGUE_COURSES_FILE"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					catalog, err := coursedb.LoadYAMLFile(c.String("courses"))
					if err != nil {
						return err
					}

					tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "COURSE\tPAR\tGENDER\tTEE\tRATING\tSLOPE")
					for _, name := range catalog.Names() {
						course, err := catalog.GetCourse(name)
						if err != nil {
							return err
						}
						for _, gender := range []coursedomain.Gender{coursedomain.GenderMale, coursedomain.GenderFemale} {
							tees := course.Tees[gender]
							names := make([]string, 0, len(tees))
							for n := range tees {
								names = append(names, n)
							}
							slices.Sort(names)
							for _, n := range names {
								tee := tees[n]
								fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.1f\t%d\n", course.Name, course.Par(), gender, tee.Name, tee.Rating, tee.Slope)
							}
						}
					}
					return tw.Flush()
				},
			},
		},
	}
}
