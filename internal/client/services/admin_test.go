package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarkpapers/quark/internal/client/bulk"
	"github.com/quarkpapers/quark/internal/client/models"
)

func TestAdminService_AssignRole(t *testing.T) {
	fake := &fakeClient{}
	svc := NewAdminService(fake, discardLogger())

	require.NoError(t, svc.AssignRole(context.Background(), "u1", models.RoleTeacher))
	require.Equal(t, "u1", fake.LastAssignUserID)
	require.Equal(t, models.RoleTeacher, fake.LastAssignRole)
}

func TestAdminService_AssignRoleUnknown(t *testing.T) {
	fake := &fakeClient{}
	svc := NewAdminService(fake, discardLogger())

	err := svc.AssignRole(context.Background(), "u1", models.Role("superuser"))
	require.Error(t, err)
	require.Empty(t, fake.LastAssignUserID)
}

func TestAdminService_BulkRegisterCSV(t *testing.T) {
	fake := &fakeClient{BulkRegisterRet: &models.BulkResult{Successful: 2, Failed: 0}}
	svc := NewAdminService(fake, discardLogger())

	csv := `username,email,password
alice,alice@example.com,pass1
bob,not-an-email,pass2
carol,carol@example.com,pass3
`
	result, issues, err := svc.BulkRegisterCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 2, result.Successful)

	// the invalid row was filtered locally and reported, not uploaded
	require.Len(t, issues, 1)
	require.Equal(t, 3, issues[0].Line)
	require.Len(t, fake.LastBulkUsers, 2)
}

func TestAdminService_BulkRegisterCSVNoValidRows(t *testing.T) {
	fake := &fakeClient{}
	svc := NewAdminService(fake, discardLogger())

	csv := `username,email,password
,not-an-email,
`
	_, issues, err := svc.BulkRegisterCSV(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	require.Len(t, issues, 1)
	require.Nil(t, fake.LastBulkUsers)
}

func TestAdminService_SubmitCourseBatch(t *testing.T) {
	fake := &fakeClient{
		ManageFn: func(kind models.AcademicKind, payload any) error {
			entry := payload.(bulk.CourseEntry)
			if entry.Name == "CS666" {
				return errors.New("duplicate course")
			}
			return nil
		},
	}
	svc := NewAdminService(fake, discardLogger())

	entries := []bulk.CourseEntry{
		{Name: "CS101", SubjectID: "s1"},
		{Name: "CS666", SubjectID: "s1"},
		{Name: "CS102", SubjectID: "s1"},
	}
	result, err := svc.SubmitCourseBatch(context.Background(), entries)
	require.NoError(t, err)
	require.Equal(t, 2, result.Successful)
	require.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	require.Contains(t, result.Failures[0], "CS666")
	// one request per entry, failures do not abort the batch
	require.Equal(t, 3, fake.ManageCalls)
}

func TestAdminService_SubmitCourseBatchEmpty(t *testing.T) {
	svc := NewAdminService(&fakeClient{}, discardLogger())
	_, err := svc.SubmitCourseBatch(context.Background(), nil)
	require.Error(t, err)
}

func TestAdminService_AddAcademicPayloads(t *testing.T) {
	fake := &fakeClient{}
	svc := NewAdminService(fake, discardLogger())
	ctx := context.Background()

	require.NoError(t, svc.AddDepartment(ctx, "Physics"))
	require.Equal(t, models.KindDepartment, fake.LastManageKind)
	require.Equal(t, map[string]string{"name": "Physics"}, fake.LastManagePayload)

	require.NoError(t, svc.AddSubject(ctx, "Mechanics", "d1"))
	require.Equal(t, models.KindSubject, fake.LastManageKind)
	require.Equal(t, map[string]string{"name": "Mechanics", "department": "d1"}, fake.LastManagePayload)

	require.NoError(t, svc.AddSection(ctx, "A", []string{"u1", "u2"}))
	require.Equal(t, models.KindSection, fake.LastManageKind)
	require.Equal(t, map[string]any{"name": "A", "students": []string{"u1", "u2"}}, fake.LastManagePayload)
}
