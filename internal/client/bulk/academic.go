package bulk

import (
	"errors"
	"strings"
)

// CourseEntry is one pending course record in an academic batch: a course
// code to create under an existing subject.
type CourseEntry struct {
	Name      string `json:"name"`
	SubjectID string `json:"subject"`
}

var (
	ErrNoSubjectSelected = errors.New("a subject must be selected")
	ErrNoCourseCodes     = errors.New("at least one course code is required")
)

// BuildCourseEntries expands a list of raw course-code inputs into batch
// entries under subjectID. Blank inputs are dropped; an all-blank list is
// an error so the operator notices before reviewing an empty batch.
func BuildCourseEntries(subjectID string, codes []string) ([]CourseEntry, error) {
	if subjectID == "" {
		return nil, ErrNoSubjectSelected
	}
	var entries []CourseEntry
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		entries = append(entries, CourseEntry{Name: code, SubjectID: subjectID})
	}
	if len(entries) == 0 {
		return nil, ErrNoCourseCodes
	}
	return entries, nil
}
