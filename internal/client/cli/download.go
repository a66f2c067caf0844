package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quarkpapers/quark/internal/client/access"
	"github.com/quarkpapers/quark/internal/client/authz"
	"github.com/quarkpapers/quark/internal/common"
)

// Download saves a watermarked copy of one paper. The OTP is always
// required; the paper password is asked for only when the summary says the
// paper is protected. Validation problems are reported inline without a
// network call.
func (a *App) Download(ctx context.Context, args []string) error {
	if !authz.CanAccess(a.holder.Identity()) {
		printlnFn("Please log in first.")
		return nil
	}
	paper, err := a.selectPaper(args)
	if err != nil {
		printlnFn(err)
		return err
	}

	otp, err := GetSimpleText(a.reader, "OTP (use 'otp' to request one)", os.Stdout)
	if err != nil {
		return err
	}
	password := ""
	if paper.RequiresPassword {
		secret, err := GetSecret("Paper password", os.Stdout)
		if err != nil {
			return err
		}
		password = string(secret)
		common.WipeByteArray(secret)
	}

	path, err := a.paperService.Download(ctx, *paper, otp, password)
	if err != nil {
		var verr *access.ValidationError
		if errors.As(err, &verr) {
			printlnFn(verr.Message)
			return err
		}
		printlnFn("Download failed:", err)
		return err
	}
	printlnFn(fmt.Sprintf("Saved to %s", path))
	return nil
}

// RequestOTP asks the service to email a one-time code to the logged-in
// account.
func (a *App) RequestOTP(ctx context.Context) error {
	if !authz.CanAccess(a.holder.Identity()) {
		printlnFn("Please log in first.")
		return nil
	}
	if err := a.paperService.RequestOTP(ctx); err != nil {
		printlnFn("Could not request OTP:", err)
		return err
	}
	printlnFn(fmt.Sprintf("OTP sent to %s", a.holder.Identity().Email))
	return nil
}
