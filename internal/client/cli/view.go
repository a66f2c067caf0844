package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/quarkpapers/quark/internal/client/access"
	"github.com/quarkpapers/quark/internal/client/authz"
	"github.com/quarkpapers/quark/internal/client/services"
	"github.com/quarkpapers/quark/internal/common"
)

// View opens one paper. The first request is sent without a password; if
// the service answers that one is required, the prompt stays open (showing
// the service's message verbatim) until the paper resolves or the user
// gives up with an empty line.
func (a *App) View(ctx context.Context, args []string) error {
	if !authz.CanAccess(a.holder.Identity()) {
		printlnFn("Please log in first.")
		return nil
	}
	paper, err := a.selectPaper(args)
	if err != nil {
		printlnFn(err)
		return err
	}

	ctrl := a.paperService.Controller()
	defer ctrl.Reset()

	password := ""
	for {
		result, err := a.paperService.View(ctx, paper.ID, password)
		if err == nil {
			a.showPaper(result)
			return nil
		}
		if ctrl.State() != access.StateAwaitingPassword {
			printlnFn("Could not open paper:", err)
			return err
		}

		printlnFn(ctrl.PromptError())
		secret, err := GetSecret("Paper password (empty to cancel)", os.Stdout)
		if err != nil {
			return err
		}
		if len(secret) == 0 {
			printlnFn("Cancelled.")
			return nil
		}
		password = string(secret)
		common.WipeByteArray(secret)
	}
}

func (a *App) showPaper(result *services.ViewResult) {
	printlnFn(fmt.Sprintf("Opened %q (%d pages)", result.Title, result.Document.Pages))
	printlnFn("Watermark:")
	printlnFn(result.WatermarkText)
}
