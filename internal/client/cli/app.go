package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/vetclinic/internal/client/api"
	"github.com/dmitrijs2005/vetclinic/internal/client/auth"
	"github.com/dmitrijs2005/vetclinic/internal/client/config"
	"github.com/dmitrijs2005/vetclinic/internal/client/services"
	"github.com/dmitrijs2005/vetclinic/internal/client/session"
	"github.com/dmitrijs2005/vetclinic/internal/client/storage"
	"github.com/dmitrijs2005/vetclinic/internal/client/stores"
	"github.com/dmitrijs2005/vetclinic/internal/filex"
	"github.com/dmitrijs2005/vetclinic/internal/logging"
)

const sessionExpiredMessage = "Su sesión ha expirado. Inicie sesión nuevamente."

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	session *session.Session
	auth    *auth.Manager
	store   *stores.AuthStore
	notes   *stores.Notifications

	owners       *services.Owners
	pets         *services.Pets
	appointments *services.Appointments
	records      *services.MedicalRecords
	vaccinations *services.Vaccinations
	services     *services.Services
	reports      *services.Reports
	activity     *services.ActivityLogs
	dashboard    *services.Dashboard

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session database and builds the client stack on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(logging.Options{Level: c.LogLevel, Format: c.LogFormat})

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := filex.EnsureParentDir(c.StoragePath); err != nil {
		logger.Error(ctx, "error preparing storage directory", "path", c.StoragePath, "error", err)
		return nil, err
	}

	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.StoragePath, "error", err)
		return nil, err
	}

	sess := session.New(db)

	gw, err := api.NewGateway(c.ServerBaseURL,
		api.WithLogger(logger),
		api.WithGeneration(sess.Generation),
		api.WithRequestInterceptors(
			api.WithRequestID(),
			api.WithBearerToken(sess, logger),
		),
		api.WithResponseInterceptors(api.LogFailures(logger)),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		logger:  logger,
		db:      db,
		session: sess,
		notes:   stores.NewNotifications(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	opts := []auth.Option{
		auth.WithLogger(logger),
		auth.WithNavigator(auth.NavigatorFunc(a.toLogin)),
	}
	if c.ScopedTeardown {
		opts = append(opts, auth.WithGenerationScopedTeardown())
	}
	a.auth = auth.NewManager(gw, sess, opts...)
	gw.OnResponse(api.OnUnauthorized(a.auth))

	a.store = stores.NewAuthStore(a.auth)
	a.owners = services.NewOwners(gw)
	a.pets = services.NewPets(gw)
	a.appointments = services.NewAppointments(gw)
	a.records = services.NewMedicalRecords(gw)
	a.vaccinations = services.NewVaccinations(gw)
	a.services = services.NewServices(gw)
	a.reports = services.NewReports(gw)
	a.activity = services.NewActivityLogs(gw)
	a.dashboard = services.NewDashboard(gw, time.Now)

	return a, nil
}

// Close releases the session database.
func (a *App) Close() error {
	a.notes.Clear()
	return a.db.Close()
}

// Run restores a persisted session (or asks for credentials), starts the
// session watcher and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.logger.Error(ctx, "closing database failed", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to the vetclinic CLI (type 'help' for commands)")

	a.store.Init(ctx)
	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartSessionWatcher(watchCtx, a.config.SessionCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.store.Authenticated.Get()
}

func (a *App) getStatus() string {
	u := a.store.User.Get()
	if u == nil {
		return ""
	}
	if role := u.RoleName(); role != "" {
		return fmt.Sprintf("(%s %s)", u.Name, role)
	}
	return fmt.Sprintf("(%s)", u.Name)
}

// toLogin runs when the server rejected the session.
func (a *App) toLogin(ctx context.Context) {
	a.store.Reset()
	a.notes.Warning(sessionExpiredMessage)
	printlnFn(sessionExpiredMessage)
}

// StartSessionWatcher checks the stored token every interval and resets the
// client once it is no longer valid. A non-positive interval disables it.
func (a *App) StartSessionWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.logger.Warn(ctx, "session watcher disabled", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}

			checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			valid := a.auth.IsAuthenticated(checkCtx)
			cancel()

			// An expired token makes IsAuthenticated log out; a 401 on that
			// logout already ran toLogin and reset the store.
			if !valid && a.isLoggedIn() {
				a.logger.Info(ctx, "session no longer valid")
				a.toLogin(ctx)
			}

		case <-ctx.Done():
			return
		}
	}
}
