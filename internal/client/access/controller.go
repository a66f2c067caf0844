package access

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/quarkpapers/quark/internal/client/api"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/logging"
)

// Prompt texts shown for locally detected validation failures. They mirror
// the dialogs of the web client so both frontends behave identically.
const (
	msgPasswordRequired      = "Password is required to view this paper."
	msgOTPRequired           = "Please enter the OTP."
	msgPaperPasswordRequired = "This paper requires a paper-specific password."
)

// Controller decides, for a given paper and action, what secondary factors
// (paper password, OTP) must be collected before the action is issued,
// issues the request, and classifies the response.
//
// Contract:
//   - One attempt at a time: invoking an operation while a request is
//     outstanding returns ErrAttemptInFlight.
//   - Nothing is retried automatically; every retry is a new invocation.
//   - Resolved content is never kept across paper ids.
type Controller struct {
	client   api.Client
	identity identityFn
	validate *validator.Validate
	log      logging.Logger

	mu        sync.Mutex
	inFlight  bool
	state     State
	attempt   Attempt
	paper     *models.ResolvedPaper
	promptErr string
}

// NewController builds a controller borrowing the current identity from
// ident on each call.
func NewController(client api.Client, ident func() *models.Identity, log logging.Logger) *Controller {
	return &Controller{
		client:   client,
		identity: ident,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
		state:    StateIdle,
	}
}

// State returns the current attempt state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attempt returns a copy of the current attempt so the caller can re-fill
// prompts without losing what the user already typed.
func (c *Controller) Attempt() Attempt {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempt
}

// Paper returns the resolved content while the state is Displaying, nil
// otherwise.
func (c *Controller) Paper() *models.ResolvedPaper {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paper
}

// PromptError is the inline error text of the password/OTP prompt, empty
// when there is none. It carries the backend message verbatim.
func (c *Controller) PromptError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.promptErr
}

// Reset discards the attempt and any resolved content. Called on navigation
// away so stale content can be released.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
	c.attempt = Attempt{}
	c.paper = nil
	c.promptErr = ""
}

// begin marks an attempt as in flight, clearing resolved content when the
// target paper changed.
func (c *Controller) begin(paperID string, action Action, password, otp string, next State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return ErrAttemptInFlight
	}
	if c.attempt.PaperID != paperID {
		c.paper = nil
	}
	c.attempt = Attempt{PaperID: paperID, Action: action, PaperPassword: password, OTP: otp}
	c.state = next
	c.inFlight = true
	return nil
}

func (c *Controller) finish(state State, promptErr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
	c.state = state
	c.promptErr = promptErr
}

// RequestView resolves a paper for display. password may be empty on the
// first try; the service decides whether one is required.
//
// Failure classification:
//   - a 401 whose message references the paper password moves the attempt
//     to AwaitingPassword, with the backend message as the prompt error;
//   - anything else moves it to Failed.
//
// While in AwaitingPassword the caller may resubmit with a non-empty
// password as often as needed; throttling is the service's concern.
func (c *Controller) RequestView(ctx context.Context, paperID, password string) error {
	if c.State() == StateAwaitingPassword && password == "" {
		c.finish(StateAwaitingPassword, msgPasswordRequired)
		return &ValidationError{Field: "paperPassword", Message: msgPasswordRequired}
	}

	if err := c.begin(paperID, ActionView, password, "", StateRequesting); err != nil {
		return err
	}

	paper, err := c.client.ViewPaper(ctx, paperID, password)
	if err != nil {
		if msg, ok := passwordRejection(err); ok {
			c.log.Debug(ctx, "view needs paper password", "paper_id", paperID)
			c.finish(StateAwaitingPassword, msg)
			return err
		}
		c.log.Warn(ctx, "view failed", "paper_id", paperID, "err", err)
		c.finish(StateFailed, "")
		return err
	}

	c.mu.Lock()
	c.paper = paper
	c.mu.Unlock()
	c.finish(StateDisplaying, "")
	return nil
}

// downloadInput is validated locally before any network call is made.
type downloadInput struct {
	OTP              string `validate:"required"`
	PaperPassword    string `validate:"required_if=RequiresPassword true"`
	RequiresPassword bool
}

// RequestDownload issues a download carrying the OTP and, when the paper
// summary says one is needed, the paper-specific password. Preconditions
// are checked locally first; violating them fails with *ValidationError and
// zero service calls. On rejection the attempt fields are preserved so the
// user can correct one factor without re-entering the other.
func (c *Controller) RequestDownload(ctx context.Context, paper models.PaperSummary, otp, password string) (*Download, error) {
	if err := c.begin(paper.ID, ActionDownload, password, otp, StateValidating); err != nil {
		return nil, err
	}

	in := downloadInput{OTP: otp, PaperPassword: password, RequiresPassword: paper.RequiresPassword}
	if err := c.validate.Struct(in); err != nil {
		verr := downloadValidationError(err)
		c.finish(StateValidationFailed, verr.Message)
		return nil, verr
	}

	c.mu.Lock()
	c.state = StateRequesting
	c.mu.Unlock()

	content, err := c.client.DownloadPaper(ctx, paper.ID, otp, password)
	if err != nil {
		c.log.Warn(ctx, "download failed", "paper_id", paper.ID, "err", err)
		c.finish(StateFailed, "")
		return nil, err
	}

	c.finish(StateSuccess, "")
	return &Download{
		Filename: DownloadFilename(paper.Title, c.username()),
		Content:  content,
	}, nil
}

// RequestOTP triggers delivery of a one-time code to the current identity's
// email. It is fire-and-forget with respect to the attempt: it never mutates
// attempt state, and the user still has to type the received code.
func (c *Controller) RequestOTP(ctx context.Context) error {
	ident := c.identity()
	if ident == nil {
		return api.ErrUnauthorized
	}
	return c.client.RequestOTP(ctx, ident.Email)
}

func (c *Controller) username() string {
	if ident := c.identity(); ident != nil && ident.Username != "" {
		return ident.Username
	}
	return "user"
}

// passwordRejection reports whether err is the service refusing a view for
// lack of a correct paper password, and returns the message to show in the
// prompt. The match is a substring check on the 401 message ("password" /
// "requires"), a fragile but load-bearing part of the backend contract.
func passwordRejection(err error) (string, bool) {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return "", false
	}
	if apiErr.Status != 401 {
		return "", false
	}
	if strings.Contains(apiErr.Message, "password") || strings.Contains(apiErr.Message, "requires") {
		return apiErr.Message, true
	}
	return "", false
}

func downloadValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "OTP":
			return &ValidationError{Field: "otp", Message: msgOTPRequired}
		case "PaperPassword":
			return &ValidationError{Field: "paperPassword", Message: msgPaperPasswordRequired}
		}
	}
	return &ValidationError{Message: err.Error()}
}

// DownloadFilename derives the save-as name for a downloaded paper:
// every whitespace character of the title becomes an underscore, and the
// downloading username is burned into the name next to the watermark tag.
func DownloadFilename(title, username string) string {
	underscored := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, title)
	if username == "" {
		username = "user"
	}
	return underscored + "_Watermarked_" + username + ".pdf"
}
