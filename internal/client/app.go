package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/internal/config"
	"github.com/MKhiriev/go-app-template/internal/feature/app"
	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/internal/store"
	"github.com/MKhiriev/go-app-template/internal/workers"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	store     *flow.Store[app.State, app.Action]
	persister *sessionPersister
	log       *logger.Logger
}

// NewApp restores the saved session and builds the application store. A
// missing, expired or unreadable session starts the client signed out.
func NewApp(ctx context.Context, services *service.Services, sessions store.SessionRepository, network adapter.NetworkClient, home config.ClientHome, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	initial := restore(ctx, sessions, network, log)

	s := flow.New(initial, app.New(app.Dependencies{
		Auth:        services.Auth,
		Home:        services.Home,
		Profile:     services.Profile,
		HomeRefresh: home.RefreshInterval,
	}), flow.WithName("app"), flow.WithLogger(log))

	return &App{
		store:     s,
		persister: newSessionPersister(sessions, network, app.SessionOf(initial), log),
		log:       log,
	}, nil
}

// Store returns the application store as seen by the front end.
func (a *App) Store() flow.Source[app.State, app.Action] {
	return a.store
}

// Run drives ui and the session persister until ui returns, then stops the
// store and flushes the last session change.
func (a *App) Run(ctx context.Context, ui Runner) error {
	unsubscribe := a.store.Subscribe(a.persister.observe)
	defer unsubscribe()

	front := workers.WorkerFunc(func(ctx context.Context) error {
		defer a.persister.stop()

		err := ui.Run(ctx)

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if serr := a.store.Shutdown(shutdownCtx); serr != nil {
			a.log.Warn().Err(serr).Msg("store did not stop in time")
		}

		if err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return nil
	})

	if err := workers.NewWorkers(front, a.persister).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.log.Info().Msg("client stopped")
	return nil
}

func restore(ctx context.Context, sessions store.SessionRepository, network adapter.NetworkClient, log *logger.Logger) app.State {
	session, err := sessions.Load(ctx)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return app.NewState()
	case err != nil:
		log.Warn().Err(err).Msg("could not read saved session, starting signed out")
		return app.NewState()
	}

	if session.IsZero() || session.Expired(time.Now()) {
		log.Info().Str("email", session.Email).Msg("saved session expired")
		if err := sessions.Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("could not delete expired session")
		}
		return app.NewState()
	}

	network.SetToken(session.Token)
	log.Info().Str("email", session.Email).Msg("session restored")
	return app.Restore(session)
}
