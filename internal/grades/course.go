package grades

import (
	"fmt"
	"strconv"
)

// Grade scale used across the application. UTCN grades run from 0 to 10 and
// a course is passed at 5 or above.
const (
	MinGrade     = 0.0
	MaxGrade     = 10.0
	PassingGrade = 5.0
)

// Course is one curriculum entry: a subject name, its ECTS credit weight and
// an optional grade. A nil Grade means the course has not been graded yet.
//
// A Course is created ungraded by the curriculum source and receives its
// grade exactly once, during interactive grade entry. Aggregation never
// mutates courses.
type Course struct {
	Name    string
	Credits float64
	Grade   *float64
}

// NewCourse returns an ungraded course.
func NewCourse(name string, credits float64) Course {
	return Course{Name: name, Credits: credits}
}

// SetGrade assigns the grade for this course.
func (c *Course) SetGrade(grade float64) {
	c.Grade = &grade
}

// HasGrade reports whether a grade has been assigned.
func (c Course) HasGrade() bool {
	return c.Grade != nil
}

// IsPassing reports whether the course is graded at or above the passing
// threshold.
func (c Course) IsPassing() bool {
	return c.Grade != nil && *c.Grade >= PassingGrade
}

// IsFailing reports whether the course is graded below the passing threshold.
// An ungraded course is neither passing nor failing.
func (c Course) IsFailing() bool {
	return c.Grade != nil && *c.Grade < PassingGrade
}

// DisplayName returns the label shown in interactive course lists.
func (c Course) DisplayName() string {
	return fmt.Sprintf("%s (%s credits)", c.Name, FormatCredits(c.Credits))
}

func (c Course) String() string {
	if c.Grade == nil {
		return fmt.Sprintf("%s (%s credits) - no grade", c.Name, FormatCredits(c.Credits))
	}
	return fmt.Sprintf("%s (%s credits) - grade %.2f", c.Name, FormatCredits(c.Credits), *c.Grade)
}

// FormatCredits renders a credit value without trailing zeros ("5", "7.5").
func FormatCredits(credits float64) string {
	return strconv.FormatFloat(credits, 'f', -1, 64)
}
