package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/client/client"
	"github.com/dmitrijs2005/youquote/internal/client/config"
	"github.com/dmitrijs2005/youquote/internal/client/registry"
	"github.com/dmitrijs2005/youquote/internal/client/services"
	"github.com/dmitrijs2005/youquote/internal/client/session"
	"github.com/dmitrijs2005/youquote/internal/logging"
)

// sessionStore is what the console needs from session.Store.
type sessionStore interface {
	services.SessionWriter
	Load(ctx context.Context) error
}

type App struct {
	out    io.Writer
	reader *bufio.Reader
	log    logging.Logger
	db     io.Closer

	session    sessionStore
	auth       services.AuthService
	browse     services.BrowseService
	moderation services.ModerationService
	quotes     *registry.Quotes
	users      *registry.Users

	route capability.Route
}

// NewApp opens the session database, restores the persisted session and
// wires the services against the configured remote store.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	after, err := services.ParsePostRegistration(c.PostRegistration)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	sess := session.NewStore(db)
	if err := sess.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, sess,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	quotes := registry.NewQuotes(api, logger)
	users := registry.NewUsers(api, logger)

	return &App{
		out:        os.Stdout,
		reader:     bufio.NewReader(os.Stdin),
		log:        logger,
		db:         db,
		session:    sess,
		auth:       services.NewAuthService(api, sess, after, logger),
		browse:     services.NewBrowseService(api),
		moderation: services.NewModerationService(api, sess, quotes, users, logger),
		quotes:     quotes,
		users:      users,
		route:      capability.RouteHome,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	fmt.Fprintln(a.out, "Welcome to YouQuote (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// capabilities is recomputed from the session on every call.
func (a *App) capabilities() capability.Set {
	return capability.FromSession(a.session)
}

func (a *App) status() string {
	set := a.capabilities()
	who := "guest"
	if set.Authenticated() {
		who = string(set.Role())
	}
	return fmt.Sprintf("(%s) %s", who, a.route)
}

// navigate moves to r if the current capabilities allow it.
func (a *App) navigate(r capability.Route) error {
	set := a.capabilities()
	if !set.CanNavigate(r) {
		return &navError{route: r, set: set}
	}
	a.route = r
	return nil
}
