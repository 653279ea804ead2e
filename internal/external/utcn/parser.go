package utcn

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/CronoXGM/Calculator-medie-UTCN/internal/grades"
)

// cellGap is the horizontal distance, in PDF points, separating two table
// columns. Text fragments closer than this belong to the same cell.
const cellGap = 6.0

// leadingCodeRe matches the position number in front of a course name
// ("1 Analiza matematica", "2.1 Fizica").
var leadingCodeRe = regexp.MustCompile(`^\d+(\.\d+)?\s+`)

// parsePlanPDF extracts courses from a curriculum plan document.
//
// Plan tables come in two layouts: nine columns with credits in column 7,
// and seven columns with credits in column 5. The first column holds the
// course name. Header and total rows are skipped, as are rows whose
// credits cell does not parse as a number.
func parsePlanPDF(data []byte) ([]grades.Course, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	var courses []grades.Course

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// Skip unreadable pages
			continue
		}

		for _, row := range rows {
			cells := clusterCells(row.Content)
			if course, ok := parseCourseRow(cells); ok {
				courses = append(courses, course)
			}
		}
	}

	return courses, nil
}

// clusterCells groups the text fragments of one row into table cells
// based on the horizontal gap between fragments.
func clusterCells(fragments pdf.TextHorizontal) []string {
	if len(fragments) == 0 {
		return nil
	}

	var cells []string
	var current strings.Builder
	var prevEnd float64

	for i, fragment := range fragments {
		if i > 0 && fragment.X-prevEnd > cellGap {
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		} else if i > 0 && current.Len() > 0 {
			current.WriteByte(' ')
		}

		current.WriteString(fragment.S)
		prevEnd = fragment.X + fragment.W
	}

	cells = append(cells, strings.TrimSpace(current.String()))
	return cells
}

// parseCourseRow turns one table row into a course. The boolean reports
// whether the row described a course at all.
func parseCourseRow(cells []string) (grades.Course, bool) {
	if len(cells) == 0 {
		return grades.Course{}, false
	}

	first := strings.ToUpper(cells[0])
	if strings.Contains(first, "CODUL") || strings.Contains(first, "TOTAL") {
		return grades.Course{}, false
	}

	var name, creditsText string
	switch {
	case len(cells) >= 9:
		name = cells[0]
		creditsText = cells[7]
	case len(cells) >= 7:
		name = cells[0]
		creditsText = cells[5]
	default:
		return grades.Course{}, false
	}

	credits, err := parseCredits(creditsText)
	if err != nil {
		return grades.Course{}, false
	}

	name = cleanCourseName(name)
	if name == "" {
		return grades.Course{}, false
	}

	return grades.NewCourse(name, credits), true
}

// parseCredits reads a credit value, accepting both decimal separators
// ("7.5" and "7,5").
func parseCredits(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// cleanCourseName collapses whitespace and strips the leading position
// number from a course name.
func cleanCourseName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	return leadingCodeRe.ReplaceAllString(name, "")
}
