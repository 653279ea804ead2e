package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CronoXGM/Calculator-medie-UTCN/internal/external/utcn"
	"github.com/CronoXGM/Calculator-medie-UTCN/internal/grades"
)

const (
	separatorLine       = "───────────────────────────────────────────────────────────"
	doubleSeparatorLine = "═══════════════════════════════════════════════════════════"
)

// Console renders application output to the terminal.
type Console struct {
	out io.Writer
}

// NewConsole creates a console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// ClearScreen clears the terminal
func (c *Console) ClearScreen() {
	fmt.Fprint(c.out, "\033[H\033[2J")
}

// Welcome prints the application banner
func (c *Console) Welcome() {
	c.ClearScreen()
	c.DoubleSeparator()
	fmt.Fprintln(c.out, "UTCN GRADE CALCULATOR")
	fmt.Fprintln(c.out, "Weighted Average Calculator for Semester Grades")
	c.DoubleSeparator()
	fmt.Fprintln(c.out)
}

// Step prints a numbered step header
func (c *Console) Step(number int, title string) {
	fmt.Fprintf(c.out, "Step %d: %s\n", number, title)
}

// SectionHeader prints a titled section separator
func (c *Console) SectionHeader(title string) {
	fmt.Fprintln(c.out)
	c.DoubleSeparator()
	fmt.Fprintln(c.out, title)
	c.DoubleSeparator()
}

// Println prints a plain line
func (c *Console) Println(message string) {
	fmt.Fprintln(c.out, message)
}

// Separator prints a visual separator
func (c *Console) Separator() {
	fmt.Fprintln(c.out, separatorLine)
}

// DoubleSeparator prints a double-line separator
func (c *Console) DoubleSeparator() {
	fmt.Fprintln(c.out, doubleSeparatorLine)
}

// Successf prints a success message
func (c *Console) Successf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "✅ "+format+"\n", args...)
}

// Warningf prints a warning message
func (c *Console) Warningf(format string, args ...interface{}) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "⚠️  "+format+"\n", args...)
}

// Error prints an error message
func (c *Console) Error(message string) {
	fmt.Fprintf(c.out, "\n❌ ERROR: %s\n\n", message)
}

// TableHeader prints a table header
func (c *Console) TableHeader(columns []string, widths []int) {
	for i, col := range columns {
		fmt.Fprintf(c.out, "%-*s", widths[i], col)
		if i < len(columns)-1 {
			fmt.Fprint(c.out, "  ")
		}
	}
	fmt.Fprintln(c.out)

	// Separator line
	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	fmt.Fprintln(c.out, strings.Repeat("─", totalWidth))
}

// TableRow prints a table row
func (c *Console) TableRow(values []string, widths []int) {
	for i, val := range values {
		fmt.Fprintf(c.out, "%-*s", widths[i], val)
		if i < len(values)-1 {
			fmt.Fprint(c.out, "  ")
		}
	}
	fmt.Fprintln(c.out)
}

// CourseTable prints the courses of a curriculum plan
func (c *Console) CourseTable(courses []grades.Course) {
	widths := []int{4, 50, 7}
	c.TableHeader([]string{"#", "Course", "Credits"}, widths)

	for i, course := range courses {
		c.TableRow([]string{
			strconv.Itoa(i + 1),
			course.Name,
			grades.FormatCredits(course.Credits),
		}, widths)
	}
}

// PlanList prints discovered curriculum plans with their URLs
func (c *Console) PlanList(plans []utcn.Plan) {
	for i, plan := range plans {
		fmt.Fprintf(c.out, "   %d. %s\n", i+1, plan.Title)
		fmt.Fprintf(c.out, "      %s\n", plan.URL)
	}
}

// ShowResults prints the aggregation result with an interpretation of
// the final grade.
func (c *Console) ShowResults(result grades.Result, policy grades.Policy) {
	c.SectionHeader("FINAL RESULTS")

	fmt.Fprintf(c.out, "\nTotal courses evaluated: %d\n", result.TotalCourses)
	fmt.Fprintf(c.out, "  - Passing courses (>= 5): %d\n", result.PassingCourses)
	fmt.Fprintf(c.out, "  - Failing courses (< 5): %d\n", result.FailingCourses)
	fmt.Fprintf(c.out, "\nTotal credits: %s\n", grades.FormatCredits(result.TotalCredits))

	fmt.Fprintln(c.out)
	c.Separator()
	fmt.Fprintf(c.out, "%s GRADE: %.2f\n", strings.ToUpper(policy.Label()), result.FinalGrade)
	c.Separator()

	if result.FinalGrade >= grades.PassingGrade {
		fmt.Fprintf(c.out, "\n✓ Your average is PASSING (%.2f >= 5.00)\n", result.FinalGrade)
	} else {
		fmt.Fprintf(c.out, "\n✗ Your average is FAILING (%.2f < 5.00)\n", result.FinalGrade)
	}

	if result.FailingCourses > 0 {
		c.Warningf("Warning: You have %d failing course(s)", result.FailingCourses)
		fmt.Fprintln(c.out, "   These courses significantly lower your weighted average.")
	}

	fmt.Fprintln(c.out)
}
