package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/common"
	"github.com/quarkpapers/quark/internal/logging"
)

// HTTPDoer is the subset of *http.Client used by the REST client. Tests can
// substitute a recording fake.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// RESTClient implements Client over the service's JSON/HTTP contract.
type RESTClient struct {
	baseURL string
	http    HTTPDoer
	tokens  TokenSource
	log     logging.Logger
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient returns a client rooted at baseURL (e.g.
// "https://quark.example.com/api"). tokens is borrowed read-only on every
// request; it may return "" before login.
func NewRESTClient(baseURL string, doer HTTPDoer, tokens TokenSource, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
		tokens:  tokens,
		log:     log,
	}
}

func (c *RESTClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b := &bytes.Buffer{}
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		buf = b
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", common.ContentTypeJSON)
	}
	if token := c.tokens(); token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	return req, nil
}

// do sends one request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses become *Error with the backend message;
// transport failures match ErrUnavailable.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(res.Body).Decode(&payload)
		c.log.Debug(ctx, "request rejected", "method", method, "path", path,
			"status", res.StatusCode, "message", payload.Message)
		return &Error{Status: res.StatusCode, Message: payload.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (*models.Identity, string, error) {
	body := map[string]string{"email": email, "password": password}

	// The login response is the identity itself with the token inlined.
	var res struct {
		models.Identity
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &res); err != nil {
		return nil, "", err
	}
	identity := res.Identity
	return &identity, res.Token, nil
}

func (c *RESTClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

func (c *RESTClient) RequestOTP(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/request-otp", map[string]string{"email": email}, nil)
}

func (c *RESTClient) ListPapers(ctx context.Context) ([]models.PaperSummary, error) {
	var papers []models.PaperSummary
	if err := c.do(ctx, http.MethodGet, "/papers/list", nil, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (c *RESTClient) ViewPaper(ctx context.Context, paperID, paperPassword string) (*models.ResolvedPaper, error) {
	// The view endpoint distinguishes "no password offered" (null) from an
	// empty string, so the field is a pointer.
	var pw *string
	if paperPassword != "" {
		pw = &paperPassword
	}
	body := struct {
		PaperPassword *string `json:"paperPassword"`
	}{PaperPassword: pw}

	var paper models.ResolvedPaper
	if err := c.do(ctx, http.MethodPost, "/papers/view/"+paperID, body, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

func (c *RESTClient) DownloadPaper(ctx context.Context, paperID, otp, paperPassword string) (string, error) {
	body := struct {
		OTP           string `json:"otp"`
		PaperPassword string `json:"paperPassword,omitempty"`
	}{OTP: otp, PaperPassword: paperPassword}

	var res struct {
		Content string `json:"content"`
	}
	if err := c.do(ctx, http.MethodPost, "/papers/download/"+paperID, body, &res); err != nil {
		return "", err
	}
	return res.Content, nil
}

func (c *RESTClient) UploadPaper(ctx context.Context, req models.UploadRequest) error {
	return c.do(ctx, http.MethodPost, "/papers/upload", req, nil)
}

func (c *RESTClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/auth/users/all", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *RESTClient) BulkRegister(ctx context.Context, users []models.BulkUser) (*models.BulkResult, error) {
	body := struct {
		Users []models.BulkUser `json:"users"`
	}{Users: users}

	var res models.BulkResult
	if err := c.do(ctx, http.MethodPost, "/auth/users/bulk-register", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *RESTClient) AssignRole(ctx context.Context, userID string, role models.Role) error {
	body := struct {
		UserID  string      `json:"userId"`
		NewRole models.Role `json:"newRole"`
	}{UserID: userID, NewRole: role}
	return c.do(ctx, http.MethodPost, "/admin/assign-role", body, nil)
}

func (c *RESTClient) ManageAcademicData(ctx context.Context, kind models.AcademicKind, payload any) error {
	body := struct {
		Type   models.AcademicKind `json:"type"`
		Action string              `json:"action"`
		Data   any                 `json:"data"`
	}{Type: kind, Action: "add", Data: payload}
	return c.do(ctx, http.MethodPost, "/admin/manage-academic-data", body, nil)
}

func (c *RESTClient) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	if err := c.do(ctx, http.MethodGet, "/misc/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	if err := c.do(ctx, http.MethodGet, "/misc/subjects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCourses returns the course codes for one subject, or all courses when
// subjectID is empty.
func (c *RESTClient) ListCourses(ctx context.Context, subjectID string) ([]models.Course, error) {
	path := "/misc/courses"
	if subjectID != "" {
		path += "/" + subjectID
	}
	var out []models.Course
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) ListSections(ctx context.Context) ([]models.Section, error) {
	var out []models.Section
	if err := c.do(ctx, http.MethodGet, "/misc/sections", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) AdminLogs(ctx context.Context) ([]models.LogEntry, error) {
	var out []models.LogEntry
	if err := c.do(ctx, http.MethodGet, "/admin/logs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
