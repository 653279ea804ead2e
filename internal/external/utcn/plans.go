package utcn

import (
	"fmt"
	"net/url"
	"strings"
)

// Study year bounds for the bachelor programmes.
const (
	MinStudyYear = 1
	MaxStudyYear = 4
)

// Specialization identifies a bachelor programme of the faculty.
type Specialization struct {
	Code     string // short code used on the command line
	Label    string // choice shown in interactive prompts
	PlanCode string // file name fragment used by the faculty site
}

// Specializations lists the programmes with published curriculum plans,
// in the order they are shown to the user.
func Specializations() []Specialization {
	return []Specialization{
		{Code: "CTI", Label: "CTI (Calculatoare - Romanian)", PlanCode: "Calcro"},
		{Code: "CTI_EN", Label: "CTI_EN (Calculatoare - English)", PlanCode: "Caleng(eng)"},
		{Code: "AU", Label: "AU (Automatica - Romanian)", PlanCode: "AIA_RO"},
		{Code: "AU_EN", Label: "AU_EN (Automatica - English)", PlanCode: "AIA_EN(eng)"},
	}
}

// SpecializationByCode resolves a specialization from its short code.
// Matching is case-insensitive.
func SpecializationByCode(code string) (Specialization, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, spec := range Specializations() {
		if spec.Code == normalized {
			return spec, nil
		}
	}
	return Specialization{}, fmt.Errorf("unknown specialization %q (valid: CTI, CTI_EN, AU, AU_EN)", code)
}

// ValidateStudyYear checks that a bachelor study year is in range
func ValidateStudyYear(year int) error {
	if year < MinStudyYear || year > MaxStudyYear {
		return fmt.Errorf("study year must be between %d and %d", MinStudyYear, MaxStudyYear)
	}
	return nil
}

// PlanURL builds the download URL of a curriculum plan PDF for a study
// year and specialization.
func (c *Client) PlanURL(studyYear int, spec Specialization) string {
	path := fmt.Sprintf("/files/Acasa/Site/documente/planuri_invatamant/%s/%d_L_%s_%s.pdf",
		c.academicYear, studyYear, spec.PlanCode, c.academicYear)
	return c.baseURL + encodePath(path)
}

// encodePath percent-encodes each path segment. Plan file names contain
// parentheses, which the site only serves percent-encoded.
func encodePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
