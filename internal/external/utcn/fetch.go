package utcn

import (
	"context"
	"fmt"

	"github.com/CronoXGM/Calculator-medie-UTCN/internal/grades"
)

// FetchCurriculum downloads the curriculum plan for a study year and
// specialization and extracts its courses.
func (c *Client) FetchCurriculum(ctx context.Context, studyYear int, spec Specialization) ([]grades.Course, error) {
	if err := ValidateStudyYear(studyYear); err != nil {
		return nil, err
	}

	planURL := c.PlanURL(studyYear, spec)
	c.logger.WithFields(map[string]interface{}{
		"url":            planURL,
		"study_year":     studyYear,
		"specialization": spec.Code,
	}).Info("Fetching curriculum plan")

	data, err := c.fetchDocument(ctx, planURL)
	if err != nil {
		return nil, fmt.Errorf("download curriculum plan: %w", err)
	}

	courses, err := parsePlanPDF(data)
	if err != nil {
		return nil, fmt.Errorf("parse curriculum plan: %w", err)
	}

	c.logger.WithFields(map[string]interface{}{
		"specialization": spec.Code,
		"study_year":     studyYear,
		"courses":        len(courses),
	}).Debug("Extracted curriculum courses")

	return courses, nil
}
