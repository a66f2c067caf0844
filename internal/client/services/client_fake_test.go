package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/quarkpapers/quark/internal/client/api"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/client/session"
	"github.com/quarkpapers/quark/internal/logging"
)

// fakeClient implements api.Client for service unit tests. Behavior is
// driven by the *Ret/*Err fields; arguments are recorded in the Last*
// fields.
type fakeClient struct {
	LoginIdentity *models.Identity
	LoginToken    string
	LoginErr      error

	RegisterErr error

	ViewPaperRet *models.ResolvedPaper
	ViewPaperErr error

	DownloadPaperRet string
	DownloadPaperErr error

	ListPapersRet []models.PaperSummary
	ListPapersErr error

	UploadPaperErr error

	BulkRegisterRet *models.BulkResult
	BulkRegisterErr error

	AssignRoleErr error

	// ManageFn lets a test fail individual academic records.
	ManageFn    func(kind models.AcademicKind, payload any) error
	ManageCalls int

	LastLoginEmail    string
	LastLoginPassword string
	LastRegister      models.RegisterRequest
	LastUpload        models.UploadRequest
	LastBulkUsers     []models.BulkUser
	LastAssignUserID  string
	LastAssignRole    models.Role
	LastManageKind    models.AcademicKind
	LastManagePayload any
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Identity, string, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginIdentity, f.LoginToken, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req models.RegisterRequest) error {
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) RequestOTP(ctx context.Context, email string) error { return nil }

func (f *fakeClient) ListPapers(ctx context.Context) ([]models.PaperSummary, error) {
	return f.ListPapersRet, f.ListPapersErr
}

func (f *fakeClient) ViewPaper(ctx context.Context, paperID, paperPassword string) (*models.ResolvedPaper, error) {
	return f.ViewPaperRet, f.ViewPaperErr
}

func (f *fakeClient) DownloadPaper(ctx context.Context, paperID, otp, paperPassword string) (string, error) {
	return f.DownloadPaperRet, f.DownloadPaperErr
}

func (f *fakeClient) UploadPaper(ctx context.Context, req models.UploadRequest) error {
	f.LastUpload = req
	return f.UploadPaperErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) { return nil, nil }

func (f *fakeClient) BulkRegister(ctx context.Context, users []models.BulkUser) (*models.BulkResult, error) {
	f.LastBulkUsers = users
	return f.BulkRegisterRet, f.BulkRegisterErr
}

func (f *fakeClient) AssignRole(ctx context.Context, userID string, role models.Role) error {
	f.LastAssignUserID = userID
	f.LastAssignRole = role
	return f.AssignRoleErr
}

func (f *fakeClient) ManageAcademicData(ctx context.Context, kind models.AcademicKind, payload any) error {
	f.ManageCalls++
	f.LastManageKind = kind
	f.LastManagePayload = payload
	if f.ManageFn != nil {
		return f.ManageFn(kind, payload)
	}
	return nil
}

func (f *fakeClient) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return nil, nil
}
func (f *fakeClient) ListSubjects(ctx context.Context) ([]models.Subject, error) { return nil, nil }
func (f *fakeClient) ListCourses(ctx context.Context, subjectID string) ([]models.Course, error) {
	return nil, nil
}
func (f *fakeClient) ListSections(ctx context.Context) ([]models.Section, error) { return nil, nil }
func (f *fakeClient) AdminLogs(ctx context.Context) ([]models.LogEntry, error)   { return nil, nil }

var _ api.Client = (*fakeClient)(nil)

// ---- shared helpers ----

func discardLogger() logging.Logger {
	return logging.New(io.Discard, slog.LevelError)
}

func setupHolder(t *testing.T, name string) *session.Holder {
	t.Helper()
	store, err := session.OpenStore(context.Background(), "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return session.NewHolder(store, discardLogger())
}
