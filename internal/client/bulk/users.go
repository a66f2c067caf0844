// Package bulk turns operator-supplied provisioning input (user CSVs,
// academic entry batches) into validated requests for the admin surface.
package bulk

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/quarkpapers/quark/internal/client/models"
)

// Required CSV columns. role and section are optional.
var requiredHeaders = []string{"username", "email", "password"}

// ErrEmptyCSV is returned when the file has no usable rows.
var ErrEmptyCSV = errors.New("CSV file is empty")

// RowIssue reports one rejected CSV data row. Line is 1-based and counts
// the header row, matching what an operator sees in a spreadsheet.
type RowIssue struct {
	Line int
	Err  error
}

func (r RowIssue) String() string { return fmt.Sprintf("line %d: %v", r.Line, r.Err) }

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseUsers reads a bulk-provisioning CSV. The header row must contain
// username, email and password (role and section are optional); missing
// headers are reported by name. Rows that fail validation are returned as
// issues instead of aborting the whole file, so an operator can fix them
// and re-upload. Roles outside student/teacher/admin fall back to student,
// same as the web dashboard.
func ParseUsers(r io.Reader) ([]models.BulkUser, []RowIssue, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyCSV
	}

	headers := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		headers[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := headers[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required CSV headers: %s", strings.Join(missing, ", "))
	}

	field := func(row []string, name string) string {
		i, ok := headers[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var users []models.BulkUser
	var issues []RowIssue
	for n, row := range records[1:] {
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		user := models.BulkUser{
			Username: field(row, "username"),
			Email:    field(row, "email"),
			Password: field(row, "password"),
			Role:     normalizeRole(field(row, "role")),
			Section:  field(row, "section"),
		}
		if err := validate.Struct(user); err != nil {
			issues = append(issues, RowIssue{Line: n + 2, Err: err})
			continue
		}
		users = append(users, user)
	}

	if len(users) == 0 && len(issues) == 0 {
		return nil, nil, fmt.Errorf("%w: no data rows after headers", ErrEmptyCSV)
	}
	return users, issues, nil
}

// normalizeRole lowercases the CSV value and falls back to student for
// anything unknown or empty.
func normalizeRole(s string) models.Role {
	role := models.Role(strings.ToLower(s))
	if role.Valid() {
		return role
	}
	return models.RoleStudent
}
