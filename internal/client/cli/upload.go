package cli

import (
	"context"
	"os"

	"github.com/quarkpapers/quark/internal/client/authz"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/client/services"
	"github.com/quarkpapers/quark/internal/common"
)

// Upload walks a teacher through the publish form and submits the paper.
func (a *App) Upload(ctx context.Context) error {
	if !authz.CanAccess(a.holder.Identity(), models.RoleTeacher, models.RoleAdmin) {
		printlnFn("Only teachers can upload papers.")
		return nil
	}

	in := services.UploadInput{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &in.Title},
		{"Subject ID", &in.SubjectID},
		{"Course ID", &in.CourseID},
		{"Semester", &in.Semester},
		{"Section (optional)", &in.Section},
		{"Valid from (YYYY-MM-DD)", &in.ValidFrom},
		{"Valid to (YYYY-MM-DD)", &in.ValidTo},
		{"PDF file path", &in.FilePath},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := GetSecret("Paper password (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	in.PaperPassword = string(password)
	common.WipeByteArray(password)

	if in.PaperPassword != "" {
		confirm, err := GetSecret("Confirm paper password", os.Stdout)
		if err != nil {
			return err
		}
		in.ConfirmPassword = string(confirm)
		common.WipeByteArray(confirm)
	}

	if err := a.upload.Upload(ctx, in); err != nil {
		printlnFn("Upload failed:", err)
		return err
	}
	printlnFn("Paper uploaded.")
	return nil
}
