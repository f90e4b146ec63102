package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository returns a SessionRepository backed by the sessions
// table of db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, s models.Session) error {
	log := logger.FromContext(ctx)

	var expiresAt *int64
	if !s.ExpiresAt.IsZero() {
		unix := s.ExpiresAt.Unix()
		expiresAt = &unix
	}

	query, args, err := saveSessionQuery(s.Token, s.Email, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "sessionRepository.Save").Str("email", s.Email).Msg("session saved")
	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := loadSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Load").Msg("error building query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session   models.Session
		expiresAt sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.Token, &session.Email, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrSessionNotFound
	case err != nil:
		log.Err(err).Str("func", "sessionRepository.Load").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt.Valid {
		session.ExpiresAt = time.Unix(expiresAt.Int64, 0).UTC()
	}

	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteSessionQuery()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
