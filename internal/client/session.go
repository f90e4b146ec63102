package client

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/internal/feature/app"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/internal/store"
	"github.com/MKhiriev/go-app-template/models"
)

const flushTimeout = 2 * time.Second

// sessionPersister mirrors the session held by the store into the network
// client and the session repository. observe runs on the store's dispatch
// path and never blocks; Run writes to the repository, keeping only the
// latest pending change.
type sessionPersister struct {
	sessions store.SessionRepository
	network  adapter.NetworkClient
	log      *logger.Logger

	mu   sync.Mutex
	last models.Session

	pending  chan models.Session
	done     chan struct{}
	stopOnce sync.Once
}

func newSessionPersister(sessions store.SessionRepository, network adapter.NetworkClient, current models.Session, log *logger.Logger) *sessionPersister {
	return &sessionPersister{
		sessions: sessions,
		network:  network,
		log:      log,
		last:     current,
		pending:  make(chan models.Session, 1),
		done:     make(chan struct{}),
	}
}

func (p *sessionPersister) observe(state app.State) {
	session := app.SessionOf(state)

	p.mu.Lock()
	if session == p.last {
		p.mu.Unlock()
		return
	}
	p.last = session
	p.mu.Unlock()

	p.network.SetToken(session.Token)

	// replace whatever is still queued
	select {
	case p.pending <- session:
	default:
		select {
		case <-p.pending:
		default:
		}
		p.pending <- session
	}
}

// Run implements workers.Worker.
func (p *sessionPersister) Run(ctx context.Context) error {
	for {
		select {
		case session := <-p.pending:
			p.persist(ctx, session)
		case <-p.done:
			p.flush(ctx)
			return nil
		case <-ctx.Done():
			p.flush(ctx)
			return nil
		}
	}
}

func (p *sessionPersister) stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

func (p *sessionPersister) flush(ctx context.Context) {
	select {
	case session := <-p.pending:
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		p.persist(flushCtx, session)
	default:
	}
}

func (p *sessionPersister) persist(ctx context.Context, session models.Session) {
	if session.IsZero() {
		if err := p.sessions.Delete(ctx); err != nil {
			p.log.Err(err).Str("func", "sessionPersister.persist").Msg("failed to delete session")
			return
		}
		p.log.Info().Msg("signed out, session deleted")
		return
	}

	if err := p.sessions.Save(ctx, session); err != nil {
		p.log.Err(err).Str("func", "sessionPersister.persist").Msg("failed to save session")
		return
	}
	p.log.Info().Str("email", session.Email).Msg("session saved")
}
