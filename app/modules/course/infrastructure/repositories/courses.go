package coursedb

import (
	"errors"
	"fmt"
	"os"
	"sort"

	coursedomain "github.com/Black-And-White-Club/golf-league/app/modules/course/domain"
	"gopkg.in/yaml.v3"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrDuplicateCourse = errors.New("duplicate course")
)

// Provider resolves a course by name.
type Provider interface {
	GetCourse(name string) (coursedomain.Course, error)
}

// Catalog is a read-only, in-memory course database.
type Catalog struct {
	courses map[string]coursedomain.Course
}

// NewCatalog indexes courses by name.
func NewCatalog(courses ...coursedomain.Course) (*Catalog, error) {
	c := &Catalog{courses: make(map[string]coursedomain.Course, len(courses))}
	for _, course := range courses {
		if _, exists := c.courses[course.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCourse, course.Name)
		}
		c.courses[course.Name] = course
	}
	return c, nil
}

// GetCourse returns the named course.
func (c *Catalog) GetCourse(name string) (coursedomain.Course, error) {
	course, ok := c.courses[name]
	if !ok {
		return coursedomain.Course{}, fmt.Errorf("%w: %q", ErrCourseNotFound, name)
	}
	return course, nil
}

// Names lists the catalog's course names in alphabetical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.courses))
	for name := range c.courses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type nineRecord struct {
	Rating float64 `yaml:"rating"`
	Slope  int     `yaml:"slope"`
}

type teeRecord struct {
	Name   string      `yaml:"name"`
	Rating float64     `yaml:"rating"`
	Slope  int         `yaml:"slope"`
	Front  *nineRecord `yaml:"front,omitempty"`
	Back   *nineRecord `yaml:"back,omitempty"`
}

type courseRecord struct {
	Name string                 `yaml:"name"`
	Pars []int                  `yaml:"pars"`
	Tees map[string][]teeRecord `yaml:"tees"`
}

type catalogFile struct {
	Courses []courseRecord `yaml:"courses"`
}

// LoadYAML builds a catalog from a YAML course document.
func LoadYAML(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal courses: %w", err)
	}

	courses := make([]coursedomain.Course, 0, len(doc.Courses))
	for _, rec := range doc.Courses {
		course, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return NewCatalog(courses...)
}

// LoadYAMLFile reads and parses a YAML course file.
func LoadYAMLFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course file: %w", err)
	}
	return LoadYAML(data)
}

func (r courseRecord) toDomain() (coursedomain.Course, error) {
	tees := make(map[coursedomain.Gender][]coursedomain.Tee, len(r.Tees))
	for key, list := range r.Tees {
		gender, err := coursedomain.ParseGender(key)
		if err != nil {
			return coursedomain.Course{}, fmt.Errorf("course %q: %w", r.Name, err)
		}
		for _, t := range list {
			tee := coursedomain.Tee{Name: t.Name, Rating: t.Rating, Slope: t.Slope}
			if t.Front != nil {
				tee.FrontRating, tee.FrontSlope = t.Front.Rating, t.Front.Slope
			}
			if t.Back != nil {
				tee.BackRating, tee.BackSlope = t.Back.Rating, t.Back.Slope
			}
			tees[gender] = append(tees[gender], tee)
		}
	}
	return coursedomain.NewCourse(r.Name, r.Pars, tees)
}
