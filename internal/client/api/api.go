// Package api defines the client of the Quark paper service: the interface
// consumed by application services and its REST implementation.
//
// The service owns all real business logic (authentication, paper
// encryption, OTP issuance, role enforcement); this package only shapes
// requests, injects the bearer credential, and normalizes rejections into
// *Error values and sentinel errors.
package api

import (
	"context"

	"github.com/quarkpapers/quark/internal/client/models"
)

// Client is the paper-service collaborator.
//
// Contract:
//   - Every method honors context cancellation and deadlines.
//   - Rejections with a response body are returned as *Error carrying the
//     backend message verbatim; transport-level failures match
//     ErrUnavailable via errors.Is.
//   - No method retries; retry policy belongs to the caller (and in this
//     client, nothing retries automatically).
type Client interface {
	// Login authenticates with email and password and returns the identity
	// plus the bearer token for subsequent calls.
	Login(ctx context.Context, email, password string) (*models.Identity, string, error)

	// Register creates a new account.
	Register(ctx context.Context, req models.RegisterRequest) error

	// RequestOTP triggers delivery of a one-time code to the given email.
	RequestOTP(ctx context.Context, email string) error

	// ListPapers returns the paper summaries visible to the caller.
	ListPapers(ctx context.Context) ([]models.PaperSummary, error)

	// ViewPaper resolves a paper for display. paperPassword may be empty;
	// the service decides whether one is required.
	ViewPaper(ctx context.Context, paperID, paperPassword string) (*models.ResolvedPaper, error)

	// DownloadPaper returns the watermarked document as a base64 data URI.
	// otp must be the current one-time code; paperPassword may be empty for
	// unprotected papers.
	DownloadPaper(ctx context.Context, paperID, otp, paperPassword string) (string, error)

	// UploadPaper publishes a new paper.
	UploadPaper(ctx context.Context, req models.UploadRequest) error

	// ListUsers returns all accounts (admin only).
	ListUsers(ctx context.Context) ([]models.User, error)

	// BulkRegister creates many accounts in one call (admin only).
	BulkRegister(ctx context.Context, users []models.BulkUser) (*models.BulkResult, error)

	// AssignRole changes a user's role (admin only).
	AssignRole(ctx context.Context, userID string, role models.Role) error

	// ManageAcademicData creates one academic record of the given kind
	// (admin only). payload is the kind-specific body.
	ManageAcademicData(ctx context.Context, kind models.AcademicKind, payload any) error

	// Academic reference data.
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)
	ListCourses(ctx context.Context, subjectID string) ([]models.Course, error)
	ListSections(ctx context.Context) ([]models.Section, error)

	// AdminLogs returns the audit feed (admin only).
	AdminLogs(ctx context.Context) ([]models.LogEntry, error)
}

// TokenSource supplies the current bearer credential for authorized
// requests. An empty string means "no credential"; the request is then sent
// unauthenticated and the service decides.
type TokenSource func() string
