package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quarkpapers/quark/internal/client/authz"
	"github.com/quarkpapers/quark/internal/client/models"
)

// Papers lists the papers visible to the current user and caches the
// summaries so later commands can address a paper by its list position.
func (a *App) Papers(ctx context.Context) error {
	if !authz.CanAccess(a.holder.Identity()) {
		printlnFn("Please log in first.")
		return nil
	}

	papers, err := a.paperService.List(ctx)
	if err != nil {
		printlnFn("Could not list papers:", err)
		return err
	}
	a.papers = papers

	if len(papers) == 0 {
		printlnFn("No papers available.")
		return nil
	}
	for i, p := range papers {
		locked := ""
		if p.RequiresPassword {
			locked = " [password]"
		}
		printlnFn(fmt.Sprintf("%d. %s | %s / %s, sem %s (valid %s to %s)%s",
			i+1, p.Title, p.Subject.Name, p.Course.Name, p.Semester,
			p.ValidFrom.Format("2006-01-02"), p.ValidTo.Format("2006-01-02"), locked))
	}
	return nil
}

// selectPaper resolves a command argument to a cached paper summary. The
// argument is a 1-based position from the last "papers" listing; a missing
// or stale cache asks the user to list first.
func (a *App) selectPaper(args []string) (*models.PaperSummary, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("paper number required, e.g. 'view 2'")
	}
	if len(a.papers) == 0 {
		return nil, fmt.Errorf("run 'papers' first")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.papers) {
		return nil, fmt.Errorf("no such paper: %s", args[0])
	}
	return &a.papers[n-1], nil
}
