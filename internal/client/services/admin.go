package services

import (
	"context"
	"fmt"
	"io"

	"github.com/quarkpapers/quark/internal/client/api"
	"github.com/quarkpapers/quark/internal/client/bulk"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/logging"
)

// BatchResult summarises a sequentially submitted academic batch. Each
// entry is one service call; failures are collected, not fatal.
type BatchResult struct {
	Successful int
	Failed     int
	Failures   []string
}

// AdminService is the provisioning surface: accounts, roles, academic
// reference data, bulk uploads, and the audit feed. Role enforcement is the
// service's job; these calls simply fail with ErrUnauthorized for
// non-admins.
type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	AssignRole(ctx context.Context, userID string, role models.Role) error
	Logs(ctx context.Context) ([]models.LogEntry, error)

	Departments(ctx context.Context) ([]models.Department, error)
	Subjects(ctx context.Context) ([]models.Subject, error)
	Courses(ctx context.Context, subjectID string) ([]models.Course, error)
	Sections(ctx context.Context) ([]models.Section, error)

	AddDepartment(ctx context.Context, name string) error
	AddSubject(ctx context.Context, name, departmentID string) error
	AddCourse(ctx context.Context, name, subjectID string) error
	AddSection(ctx context.Context, name string, students []string) error

	// BulkRegisterCSV parses and validates the CSV, then registers the
	// valid rows in one call. Row-level problems are returned alongside
	// the result so the operator can fix and re-upload them.
	BulkRegisterCSV(ctx context.Context, r io.Reader) (*models.BulkResult, []bulk.RowIssue, error)

	// SubmitCourseBatch adds reviewed course entries one request at a
	// time, mirroring the web dashboard's bulk academic upload.
	SubmitCourseBatch(ctx context.Context, entries []bulk.CourseEntry) (*BatchResult, error)
}

type adminService struct {
	client api.Client
	log    logging.Logger
}

// NewAdminService binds the admin surface to the API client.
func NewAdminService(client api.Client, log logging.Logger) AdminService {
	return &adminService{client: client, log: log}
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	return s.client.ListUsers(ctx)
}

func (s *adminService) AssignRole(ctx context.Context, userID string, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}
	return s.client.AssignRole(ctx, userID, role)
}

func (s *adminService) Logs(ctx context.Context) ([]models.LogEntry, error) {
	return s.client.AdminLogs(ctx)
}

func (s *adminService) Departments(ctx context.Context) ([]models.Department, error) {
	return s.client.ListDepartments(ctx)
}

func (s *adminService) Subjects(ctx context.Context) ([]models.Subject, error) {
	return s.client.ListSubjects(ctx)
}

func (s *adminService) Courses(ctx context.Context, subjectID string) ([]models.Course, error) {
	return s.client.ListCourses(ctx, subjectID)
}

func (s *adminService) Sections(ctx context.Context) ([]models.Section, error) {
	return s.client.ListSections(ctx)
}

func (s *adminService) AddDepartment(ctx context.Context, name string) error {
	return s.client.ManageAcademicData(ctx, models.KindDepartment, map[string]string{"name": name})
}

func (s *adminService) AddSubject(ctx context.Context, name, departmentID string) error {
	return s.client.ManageAcademicData(ctx, models.KindSubject,
		map[string]string{"name": name, "department": departmentID})
}

func (s *adminService) AddCourse(ctx context.Context, name, subjectID string) error {
	return s.client.ManageAcademicData(ctx, models.KindCourse,
		map[string]string{"name": name, "subject": subjectID})
}

func (s *adminService) AddSection(ctx context.Context, name string, students []string) error {
	return s.client.ManageAcademicData(ctx, models.KindSection,
		map[string]any{"name": name, "students": students})
}

func (s *adminService) BulkRegisterCSV(ctx context.Context, r io.Reader) (*models.BulkResult, []bulk.RowIssue, error) {
	users, issues, err := bulk.ParseUsers(r)
	if err != nil {
		return nil, nil, err
	}
	if len(users) == 0 {
		return nil, issues, fmt.Errorf("no valid user rows to upload")
	}

	result, err := s.client.BulkRegister(ctx, users)
	if err != nil {
		return nil, issues, err
	}
	s.log.Info(ctx, "bulk register finished",
		"successful", result.Successful, "failed", result.Failed, "rejected_rows", len(issues))
	return result, issues, nil
}

func (s *adminService) SubmitCourseBatch(ctx context.Context, entries []bulk.CourseEntry) (*BatchResult, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to upload")
	}

	result := &BatchResult{}
	for _, entry := range entries {
		if err := s.client.ManageAcademicData(ctx, models.KindCourse, entry); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", entry.Name, err))
			continue
		}
		result.Successful++
	}
	return result, nil
}
