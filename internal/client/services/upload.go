package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/quarkpapers/quark/internal/client/api"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/logging"
)

// Validation messages match the web upload form.
var (
	ErrPasswordMismatch = errors.New("paper password and confirmation do not match")
	ErrPasswordTooShort = errors.New("paper password must be at least 4 characters long")
)

// UploadInput is the teacher-facing upload form. The paper password is
// optional; when set it must be confirmed and at least 4 characters.
type UploadInput struct {
	Title     string `validate:"required"`
	SubjectID string `validate:"required"`
	CourseID  string `validate:"required"`
	Semester  string `validate:"required"`
	Section   string
	ValidFrom string `validate:"required"`
	ValidTo   string `validate:"required"`
	FilePath  string `validate:"required"`

	PaperPassword   string
	ConfirmPassword string
}

// UploadService publishes new papers on behalf of teachers.
type UploadService interface {
	Upload(ctx context.Context, in UploadInput) error
}

type uploadService struct {
	client   api.Client
	validate *validator.Validate
	log      logging.Logger
}

// NewUploadService binds the upload flow to the API client.
func NewUploadService(client api.Client, log logging.Logger) UploadService {
	return &uploadService{
		client:   client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Upload validates the form, reads and base64-encodes the document, and
// publishes it. Validation failures never reach the network.
func (s *uploadService) Upload(ctx context.Context, in UploadInput) error {
	if err := s.validate.Struct(in); err != nil {
		return err
	}
	if in.PaperPassword != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if in.PaperPassword != "" && len(in.PaperPassword) < 4 {
		return ErrPasswordTooShort
	}

	raw, err := os.ReadFile(in.FilePath)
	if err != nil {
		return fmt.Errorf("read paper file: %w", err)
	}

	req := models.UploadRequest{
		Title:         in.Title,
		Subject:       in.SubjectID,
		Course:        in.CourseID,
		Semester:      in.Semester,
		Section:       in.Section,
		ValidFrom:     in.ValidFrom,
		ValidTo:       in.ValidTo,
		Content:       base64.StdEncoding.EncodeToString(raw),
		PaperPassword: in.PaperPassword,
	}
	if err := s.client.UploadPaper(ctx, req); err != nil {
		return err
	}
	s.log.Info(ctx, "paper uploaded", "title", in.Title, "protected", in.PaperPassword != "")
	return nil
}
