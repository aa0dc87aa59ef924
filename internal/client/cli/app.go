package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/pawsome/internal/client/client"
	"github.com/dmitrijs2005/pawsome/internal/client/config"
	"github.com/dmitrijs2005/pawsome/internal/client/forms"
	"github.com/dmitrijs2005/pawsome/internal/client/models"
	"github.com/dmitrijs2005/pawsome/internal/client/services"
	"github.com/dmitrijs2005/pawsome/internal/filex"
	"github.com/dmitrijs2005/pawsome/internal/logging"
)

// Local profile location used when no DSN is configured.
const (
	profileDir  = ".pawsome"
	profileFile = "profile.db"
)

type formController interface {
	Signup(ctx context.Context, f forms.SignupForm) (*forms.Outcome, error)
	Login(ctx context.Context, f forms.LoginForm) (*forms.Outcome, error)
	Logout(ctx context.Context) error
}

type App struct {
	config     *config.Config
	db         *sql.DB
	controller formController
	profile    services.ProfileService
	logger     logging.Logger
	user       *models.User
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	dsn := c.ProfileDSN
	if dsn == "" {
		path, err := filex.DataPath(profileDir, profileFile)
		if err != nil {
			return nil, err
		}
		dsn = path
	}

	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("profile database: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	profile := services.NewProfileService(db)

	return &App{
		config:     c,
		db:         db,
		controller: forms.NewController(api, profile),
		profile:    profile,
		logger:     logging.New(os.Stderr, "warn").With("module", "cli"),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run restores the remembered account, then serves the REPL until the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.restore(ctx); err != nil {
		a.logger.Warn(ctx, "profile restore failed", "error", err)
	}

	printlnFn("Welcome to Pawsome CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) restore(ctx context.Context) error {
	u, err := a.profile.Load(ctx)
	if err != nil {
		return err
	}
	a.user = u
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Name)
}
