package services

import (
	"context"
	"time"

	"github.com/quarkpapers/quark/internal/client/access"
	"github.com/quarkpapers/quark/internal/client/api"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/client/session"
	"github.com/quarkpapers/quark/internal/client/viewer"
	"github.com/quarkpapers/quark/internal/client/watermark"
	"github.com/quarkpapers/quark/internal/logging"
)

// ViewResult is a resolved paper ready for display: the validated document,
// and the watermark text derived from the server-supplied info (or from the
// local identity when the server sent none).
type ViewResult struct {
	Title         string
	Document      *viewer.Document
	WatermarkText string
	Overlay       watermark.Overlay
}

// PaperService drives the student-facing flows: listing papers, the gated
// view flow, and the OTP-protected download flow.
//
// View and Download delegate factor collection to the access controller;
// callers inspect Controller() for the attempt state (e.g. to keep a
// password prompt open after a rejection).
type PaperService interface {
	List(ctx context.Context) ([]models.PaperSummary, error)
	View(ctx context.Context, paperID, paperPassword string) (*ViewResult, error)
	Download(ctx context.Context, paper models.PaperSummary, otp, paperPassword string) (string, error)
	RequestOTP(ctx context.Context) error
	Controller() *access.Controller
}

type paperService struct {
	client      api.Client
	ctrl        *access.Controller
	holder      *session.Holder
	downloadDir string
	log         logging.Logger
	now         func() time.Time
}

// NewPaperService wires the paper flows to the API client, the access
// controller, and the session holder. Downloads are saved under downloadDir.
func NewPaperService(client api.Client, holder *session.Holder, downloadDir string, log logging.Logger) PaperService {
	return &paperService{
		client:      client,
		ctrl:        access.NewController(client, holder.Identity, log),
		holder:      holder,
		downloadDir: downloadDir,
		log:         log,
		now:         time.Now,
	}
}

func (s *paperService) Controller() *access.Controller { return s.ctrl }

func (s *paperService) List(ctx context.Context) ([]models.PaperSummary, error) {
	return s.client.ListPapers(ctx)
}

// View resolves and validates a paper. On a password rejection the
// controller is left in AwaitingPassword and the error is returned for the
// prompt; a payload the PDF reader cannot parse is a terminal content error
// and abandons the attempt.
func (s *paperService) View(ctx context.Context, paperID, paperPassword string) (*ViewResult, error) {
	if err := s.ctrl.RequestView(ctx, paperID, paperPassword); err != nil {
		return nil, err
	}

	paper := s.ctrl.Paper()
	raw, err := viewer.DecodeDataURI(paper.Content)
	if err != nil {
		s.ctrl.Reset()
		return nil, err
	}
	doc, err := viewer.Open(raw)
	if err != nil {
		s.ctrl.Reset()
		return nil, err
	}

	s.log.Info(ctx, "paper resolved", "paper_id", paperID, "pages", doc.Pages)
	return &ViewResult{
		Title:         paper.Title,
		Document:      doc,
		WatermarkText: watermark.Text(paper.Watermark, s.holder.Identity(), s.now()),
		Overlay:       watermark.DefaultOverlay(),
	}, nil
}

// Download runs the OTP-gated download and saves the watermarked document,
// returning the saved path.
func (s *paperService) Download(ctx context.Context, paper models.PaperSummary, otp, paperPassword string) (string, error) {
	dl, err := s.ctrl.RequestDownload(ctx, paper, otp, paperPassword)
	if err != nil {
		return "", err
	}

	raw, err := viewer.DecodeDataURI(dl.Content)
	if err != nil {
		return "", err
	}
	path, err := viewer.SaveAs(s.downloadDir, dl.Filename, raw)
	if err != nil {
		return "", err
	}
	s.log.Info(ctx, "paper downloaded", "paper_id", paper.ID, "path", path)
	return path, nil
}

func (s *paperService) RequestOTP(ctx context.Context) error {
	return s.ctrl.RequestOTP(ctx)
}
