package ui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/CronoXGM/Calculator-medie-UTCN/internal/external/utcn"
	"github.com/CronoXGM/Calculator-medie-UTCN/internal/grades"
)

// IsInterrupt reports whether err means the user pressed Ctrl+C in a prompt
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}

// ValidateStudyYearInput checks that input is a study year between 1 and 4
func ValidateStudyYearInput(input string) error {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return errors.New("please enter a number between 1 and 4")
	}
	return utcn.ValidateStudyYear(year)
}

// ParseGrade reads a grade between 0 and 10 from user input
func ParseGrade(input string) (float64, error) {
	grade, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, errors.New("please enter a valid number")
	}
	// ParseFloat accepts "nan", which the range comparisons cannot catch.
	if math.IsNaN(grade) || grade < grades.MinGrade || grade > grades.MaxGrade {
		return 0, errors.New("please enter a grade between 0 and 10")
	}
	return grade, nil
}

// ValidateGradeInput is the prompt validator wrapper around ParseGrade
func ValidateGradeInput(input string) error {
	_, err := ParseGrade(input)
	return err
}

// PromptStudyYear asks for the bachelor study year
func (c *Console) PromptStudyYear() (int, error) {
	var answer string
	prompt := &survey.Input{
		Message: "Enter your study year (1-4):",
	}

	err := survey.AskOne(prompt, &answer, survey.WithValidator(func(ans interface{}) error {
		input, _ := ans.(string)
		return ValidateStudyYearInput(input)
	}))
	if err != nil {
		return 0, err
	}

	year, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("invalid study year: %w", err)
	}

	return year, nil
}

// PromptSpecialization asks which programme the student follows
func (c *Console) PromptSpecialization() (utcn.Specialization, error) {
	specs := utcn.Specializations()
	options := make([]string, len(specs))
	for i, spec := range specs {
		options[i] = spec.Label
	}

	var index int
	prompt := &survey.Select{
		Message: "Select your specialization:",
		Options: options,
	}

	if err := survey.AskOne(prompt, &index); err != nil {
		return utcn.Specialization{}, err
	}

	return specs[index], nil
}

// SelectCourses shows a checkbox list of the curriculum courses and
// returns the indices the user picked. Nothing is preselected.
func (c *Console) SelectCourses(courses []grades.Course) ([]int, error) {
	options := make([]string, len(courses))
	for i, course := range courses {
		options[i] = course.DisplayName()
	}

	var indices []int
	prompt := &survey.MultiSelect{
		Message: "Select subjects that you take and want to insert grade:",
		Options: options,
	}

	if err := survey.AskOne(prompt, &indices); err != nil {
		return nil, err
	}

	return indices, nil
}

// PromptPolicy asks which averaging method to use
func (c *Console) PromptPolicy() (grades.Policy, error) {
	policies := []grades.Policy{grades.PolicyArithmetic, grades.PolicyHarmonic}
	options := make([]string, len(policies))
	for i, policy := range policies {
		options[i] = policy.Label()
	}

	var index int
	prompt := &survey.Select{
		Message: "Select the averaging method:",
		Options: options,
	}

	if err := survey.AskOne(prompt, &index); err != nil {
		return "", err
	}

	return policies[index], nil
}

// CollectGrades asks for a grade for every selected course and prints
// pass/fail feedback after each entry.
func (c *Console) CollectGrades(courses []grades.Course) ([]grades.Course, error) {
	graded := make([]grades.Course, 0, len(courses))

	for _, course := range courses {
		var answer string
		prompt := &survey.Input{
			Message: fmt.Sprintf("Grade for %s:", course.DisplayName()),
		}

		err := survey.AskOne(prompt, &answer, survey.WithValidator(func(ans interface{}) error {
			input, _ := ans.(string)
			return ValidateGradeInput(input)
		}))
		if err != nil {
			return nil, err
		}

		grade, err := ParseGrade(answer)
		if err != nil {
			return nil, err
		}

		course.SetGrade(grade)
		graded = append(graded, course)

		if course.IsPassing() {
			fmt.Fprintf(c.out, "  ✓ Passing grade: %s\n", formatGrade(grade))
		} else {
			fmt.Fprintf(c.out, "  ✗ Failing grade: %s (will lower your average)\n", formatGrade(grade))
		}
	}

	return graded, nil
}

func formatGrade(grade float64) string {
	return strconv.FormatFloat(grade, 'f', -1, 64)
}
