// Package cli is the interactive terminal front end of the Quark client.
// It replaces the web dashboards with a small REPL whose commands are gated
// by the logged-in role.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	"github.com/quarkpapers/quark/internal/client/api"
	"github.com/quarkpapers/quark/internal/client/config"
	"github.com/quarkpapers/quark/internal/client/models"
	"github.com/quarkpapers/quark/internal/client/services"
	"github.com/quarkpapers/quark/internal/client/session"
	"github.com/quarkpapers/quark/internal/logging"
)

// App wires the services together and holds the per-run UI state.
type App struct {
	config *config.Config
	log    logging.Logger

	holder *session.Holder
	store  *session.Store

	authService  services.AuthService
	paperService services.PaperService
	adminService services.AdminService
	upload       services.UploadService

	// papers is the last listed set of summaries so view/download can be
	// addressed by list position. It is discarded on logout.
	papers []models.PaperSummary

	reader *bufio.Reader
}

// NewApp builds the full client from config.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(os.Stderr, slog.LevelWarn)

	store, err := session.OpenStore(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}
	holder := session.NewHolder(store, log)

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	apiClient := api.NewRESTClient(cfg.ServerBaseURL, httpClient, holder.Token, log)

	return &App{
		config:       cfg,
		log:          log,
		holder:       holder,
		store:        store,
		authService:  services.NewAuthService(apiClient, holder, log),
		paperService: services.NewPaperService(apiClient, holder, cfg.DownloadDir, log),
		adminService: services.NewAdminService(apiClient, log),
		upload:       services.NewUploadService(apiClient, log),
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	if identity, err := a.authService.Restore(ctx); err == nil {
		printlnFn(fmt.Sprintf("Welcome back, %s (%s)", identity.Username, identity.Role))
	} else if !errors.Is(err, session.ErrNoSession) {
		printlnFn("Stored session is no longer valid, please log in again.")
	}

	printlnFn("Quark paper client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.holder.Identity() != nil
}

// status renders the prompt decoration, e.g. "(alice student)".
func (a *App) status() string {
	identity := a.holder.Identity()
	if identity == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", identity.Username, identity.Role)
}
