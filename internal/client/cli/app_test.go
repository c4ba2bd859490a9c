package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/client/client"
	"github.com/dmitrijs2005/youquote/internal/client/config"
	"github.com/dmitrijs2005/youquote/internal/client/registry"
	"github.com/dmitrijs2005/youquote/internal/client/services"
	"github.com/dmitrijs2005/youquote/internal/client/session"
	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/logging"
	"github.com/dmitrijs2005/youquote/internal/server/httpapi"
	"github.com/dmitrijs2005/youquote/internal/server/store"
)

func newTestApp(t *testing.T, after services.PostRegistration) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	remote := store.New()
	require.NoError(t, remote.Seed(ctx))
	srv := httptest.NewServer(httpapi.NewServer("", logging.Discard(), remote, "cli-test", time.Hour).Routes())
	t.Cleanup(srv.Close)

	db, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sess := session.NewStore(db)
	api, err := client.NewHTTPClient(srv.URL, sess)
	require.NoError(t, err)

	log := logging.Discard()
	quotes := registry.NewQuotes(api, log)
	users := registry.NewUsers(api, log)
	var out bytes.Buffer

	return &App{
		out:        &out,
		reader:     bufio.NewReader(strings.NewReader("")),
		log:        log,
		session:    sess,
		auth:       services.NewAuthService(api, sess, after, log),
		browse:     services.NewBrowseService(api),
		moderation: services.NewModerationService(api, sess, quotes, users, log),
		quotes:     quotes,
		users:      users,
		route:      capability.RouteHome,
	}, &out
}

func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		require.NotEmpty(t, texts, "unexpected text prompt")
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		require.NotEmpty(t, passwords, "unexpected password prompt")
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func loginAs(t *testing.T, a *App, email string) {
	t.Helper()
	stubInputs(t, []string{email}, store.SeedPassword)
	require.NoError(t, a.Login(context.Background()))
}

func TestApp_AnonymousNavigation(t *testing.T) {
	a, out := newTestApp(t, services.PostRegistrationVerifyEmail)
	ctx := context.Background()

	require.NoError(t, a.Home(ctx))
	assert.Contains(t, out.String(), "register, login")

	err := a.Quotes(ctx)
	require.ErrorIs(t, err, common.ErrForbidden)
	assert.Equal(t, "The quotes page is not available. Available: home, register, login.", client.UserMessage(err))

	require.ErrorIs(t, a.Dashboard(ctx), common.ErrForbidden)
	require.ErrorIs(t, a.Delete(ctx, 1), common.ErrForbidden)

	err = a.Logout(ctx)
	assert.Equal(t, "You are not logged in.", client.UserMessage(err))
	assert.Equal(t, "(guest) home", a.status())
}

func TestApp_LoginBrowseLogout(t *testing.T) {
	a, out := newTestApp(t, services.PostRegistrationVerifyEmail)
	ctx := context.Background()

	loginAs(t, a, store.SeedUserEmail)
	assert.Contains(t, out.String(), "Logged in as User (user).")
	assert.Equal(t, "(user) home", a.status())

	out.Reset()
	require.NoError(t, a.Quotes(ctx))
	assert.Contains(t, out.String(), "Steve Jobs")
	assert.NotContains(t, out.String(), "CREATED", "timestamps are for admins only")

	out.Reset()
	require.NoError(t, a.Quote(ctx, 1))
	assert.Contains(t, out.String(), "The only way to do great work")
	assert.NotContains(t, out.String(), "Created:")

	out.Reset()
	require.NoError(t, a.Authors(ctx))
	assert.Contains(t, out.String(), "Moderator")

	out.Reset()
	require.NoError(t, a.Author(ctx, 3))
	assert.Contains(t, out.String(), "Dijkstra")

	err := a.Login(ctx)
	assert.Equal(t, "You are already logged in. Use logout first.", client.UserMessage(err))
	require.ErrorIs(t, a.Dashboard(ctx), common.ErrForbidden)

	require.NoError(t, a.Logout(ctx))
	require.ErrorIs(t, a.Quotes(ctx), common.ErrForbidden)
}

func TestApp_WrongPassword(t *testing.T) {
	a, _ := newTestApp(t, services.PostRegistrationVerifyEmail)
	stubInputs(t, []string{store.SeedAdminEmail}, "nope")

	err := a.Login(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", client.UserMessage(err))
	assert.False(t, a.capabilities().Authenticated())
}

func TestApp_AdminModeration(t *testing.T) {
	a, out := newTestApp(t, services.PostRegistrationVerifyEmail)
	ctx := context.Background()
	loginAs(t, a, store.SeedAdminEmail)

	out.Reset()
	require.NoError(t, a.Dashboard(ctx))
	assert.Contains(t, out.String(), "ACTIVE QUOTES")
	assert.Contains(t, out.String(), "admin@example.com")
	assert.Equal(t, 3, a.quotes.CountActive())
	assert.Equal(t, 1, a.quotes.CountDeleted())

	out.Reset()
	require.NoError(t, a.Delete(ctx, 1))
	assert.Contains(t, out.String(), "Quote 1 deleted. Active: 2, deleted: 2.")

	out.Reset()
	require.NoError(t, a.Deleted(ctx))
	assert.Contains(t, out.String(), "DELETED")

	out.Reset()
	require.NoError(t, a.Purge(ctx, 1))
	assert.Contains(t, out.String(), "Quote 1 permanently deleted. Deleted: 1.")

	err := a.Purge(ctx, 1)
	require.ErrorIs(t, err, client.ErrNotFound)

	require.NoError(t, a.RestoreAll(ctx))
	assert.Equal(t, 0, a.quotes.CountDeleted())

	require.NoError(t, a.Delete(ctx, 2))
	require.NoError(t, a.Restore(ctx, 2))
	require.NoError(t, a.Delete(ctx, 2))
	require.NoError(t, a.PurgeAll(ctx))
	assert.Equal(t, 0, a.quotes.CountDeleted())

	out.Reset()
	require.NoError(t, a.ChangeRole(ctx, 3, "moderator"))
	assert.Contains(t, out.String(), "User 3 is now moderator.")

	err = a.ChangeRole(ctx, 3, "root")
	require.ErrorIs(t, err, client.ErrValidation)

	require.NoError(t, a.Users(ctx))
	require.NoError(t, a.DeleteUser(ctx, 3))
	assert.Equal(t, 2, a.users.Count())
}

func TestApp_Register_VerifyEmail(t *testing.T) {
	a, out := newTestApp(t, services.PostRegistrationVerifyEmail)
	stubInputs(t, []string{"Ann", "ann@example.com"}, "longenough", "longenough")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, capability.RouteVerifyEmail, a.route)
	assert.Contains(t, out.String(), "verification email")
}

func TestApp_Register_Alert(t *testing.T) {
	a, out := newTestApp(t, services.PostRegistrationAlert)
	stubInputs(t, []string{"Ann", "ann@example.com"}, "longenough", "longenough")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, capability.RouteRegister, a.route)
	assert.Contains(t, out.String(), "Registration successful!")
}

func TestApp_Register_Mismatch(t *testing.T) {
	a, _ := newTestApp(t, services.PostRegistrationAlert)
	stubInputs(t, []string{"Ann", "ann@example.com"}, "longenough", "different")

	err := a.Register(context.Background())
	assert.Equal(t, "Passwords do not match!", client.UserMessage(err))
}

func TestNewApp_BadPostRegistration(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PostRegistration = "popup"
	cfg.SessionDBPath = ":memory:"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestNewApp_RestoresSession(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SessionDBPath = t.TempDir() + "/session.db"
	cfg.LogLevel = "error"
	ctx := context.Background()

	first, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, first.session.SetSession(ctx, "token", "admin"))
	require.NoError(t, first.db.Close())

	second, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.db.Close() })
	assert.True(t, second.capabilities().CanNavigate(capability.RouteDashboard))
	assert.Equal(t, "(admin) home", second.status())
}
