package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"taskboard.app/server/core/db/sqlc"
	"taskboard.app/server/internal/model"
)

type sessionStore struct {
	queries *sqlc.Queries
}

func newSessionStore(queries *sqlc.Queries) SessionStore {
	return &sessionStore{queries: queries}
}

func (s *sessionStore) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	row, err := s.queries.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) GetValidByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	row, err := s.queries.GetValidSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSessionModel(row), nil
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	row, err := s.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		ID:        session.ID,
		UserID:    session.UserID,
		TokenHash: session.TokenHash,
		ExpiresAt: pgtype.Timestamptz{
			Time:  session.ExpiresAt,
			Valid: true,
		},
	})
	if err != nil {
		return err
	}
	token := session.Token
	*session = *toSessionModel(row)
	session.Token = token
	return nil
}

func (s *sessionStore) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	return s.queries.DeleteSessionByTokenHash(ctx, tokenHash)
}

func (s *sessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	return s.queries.DeleteSessionsByUser(ctx, userID)
}

func (s *sessionStore) DeleteExpired(ctx context.Context) error {
	return s.queries.DeleteExpiredSessions(ctx)
}

func toSessionModel(row sqlc.Session) *model.Session {
	return &model.Session{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt.Time,
		CreatedAt: row.CreatedAt.Time,
	}
}
