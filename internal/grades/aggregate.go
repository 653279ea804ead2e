package grades

import (
	"fmt"
	"math"
)

// Policy selects the weighting formula used to reduce a course list to a
// single average. The arithmetic mean is the standard university average;
// the harmonic mean is a stricter variant in which failing grades drag the
// average down much harder.
type Policy string

const (
	// PolicyArithmetic is the credit-weighted arithmetic mean:
	// sum(grade*credits) / sum(credits).
	PolicyArithmetic Policy = "arithmetic"

	// PolicyHarmonic is the credit-weighted harmonic mean:
	// sum(credits) / sum(credits/grade), with failing grades included at
	// their literal value. A grade of 1 is punished harder than a 4.
	PolicyHarmonic Policy = "harmonic"
)

// String returns the policy tag used on the CLI.
func (p Policy) String() string {
	return string(p)
}

// Label returns a human-readable name for result output.
func (p Policy) Label() string {
	switch p {
	case PolicyHarmonic:
		return "weighted harmonic mean"
	default:
		return "weighted arithmetic mean"
	}
}

// ParsePolicy maps a CLI flag value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case string(PolicyArithmetic):
		return PolicyArithmetic, nil
	case string(PolicyHarmonic):
		return PolicyHarmonic, nil
	default:
		return "", fmt.Errorf("unknown policy: %s (valid: arithmetic, harmonic)", s)
	}
}

// Result is the outcome of one aggregation pass. It is a plain value built
// fresh on every call; callers never share or mutate it.
//
// PassingCourses + FailingCourses always equals TotalCourses: only graded
// courses with positive credits are counted at all.
type Result struct {
	FinalGrade     float64
	TotalCredits   float64
	PassingCourses int
	FailingCourses int
	TotalCourses   int
}

// Aggregate reduces courses to a Result under the given policy. Any policy
// other than PolicyHarmonic computes the arithmetic mean, which is the
// standard formula.
func Aggregate(courses []Course, policy Policy) Result {
	if policy == PolicyHarmonic {
		return WeightedHarmonicMean(courses)
	}
	return WeightedArithmeticMean(courses)
}

// WeightedArithmeticMean computes the standard credit-weighted average:
// sum(grade*credits) / sum(credits).
//
// Courses without a grade or without positive credits are excluded. When
// nothing is left to average, the zero Result is returned instead of an
// error. The final grade stays within the grade scale as long as the input
// grades do.
func WeightedArithmeticMean(courses []Course) Result {
	valid := filterValid(courses)
	if len(valid) == 0 {
		return Result{}
	}

	r := summarize(valid)

	var weightedSum float64
	for _, c := range valid {
		weightedSum += *c.Grade * c.Credits
	}

	var final float64
	if r.TotalCredits > 0 {
		final = weightedSum / r.TotalCredits
	}
	r.FinalGrade = round2(final)
	return r
}

// WeightedHarmonicMean computes the credit-weighted harmonic mean:
// sum(credits) / sum(credits/grade).
//
// Every graded course contributes credits/grade to the denominator, failing
// courses included at their literal sub-5 value. Unlike the arithmetic mean,
// no [0, 10] range guarantee is made for the result: how hard a failing
// grade drags the average depends on the credit/grade distribution.
//
// A grade of exactly 0 pushes its ratio term to +Inf and the final grade to
// 0.00, following IEEE division without a special case.
func WeightedHarmonicMean(courses []Course) Result {
	valid := filterValid(courses)
	if len(valid) == 0 {
		return Result{}
	}

	r := summarize(valid)

	var ratioSum float64
	for _, c := range valid {
		ratioSum += c.Credits / *c.Grade
	}

	var final float64
	if ratioSum != 0 {
		final = r.TotalCredits / ratioSum
	}
	r.FinalGrade = round2(final)
	return r
}

// SelectByIndices returns the courses at the given zero-based indices in
// index order. Indices outside the list are dropped silently; an interactive
// selection is never an error.
func SelectByIndices(courses []Course, indices []int) []Course {
	selected := make([]Course, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(courses) {
			selected = append(selected, courses[idx])
		}
	}
	return selected
}

// filterValid keeps the courses that participate in a calculation: graded,
// with a positive credit weight.
func filterValid(courses []Course) []Course {
	valid := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.HasGrade() && c.Credits > 0 {
			valid = append(valid, c)
		}
	}
	return valid
}

// summarize fills the credit total and the pass/fail counters for an
// already-filtered course list. FinalGrade is left for the caller.
func summarize(valid []Course) Result {
	var r Result
	for _, c := range valid {
		r.TotalCredits += c.Credits
		r.TotalCourses++
		if c.IsPassing() {
			r.PassingCourses++
		} else if c.IsFailing() {
			r.FailingCourses++
		}
	}
	return r
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
