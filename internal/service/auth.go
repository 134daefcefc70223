package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskboard.app/server/common/id"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrSessionExpired     = errors.New("session expired")
)

const (
	minPasswordLength = 8
	sessionTokenBytes = 32
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, *model.Session, error)
	Login(ctx context.Context, email, password string) (*model.User, *model.Session, error)
	ValidateSession(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	sessionTTL   time.Duration
}

func NewAuthService(userStore store.UserStore, sessionStore store.SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, *model.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if len(password) < minPasswordLength {
		return nil, nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           id.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("creating user: %w", err)
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return user, session, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("getting user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID, "session_id", session.ID)
	return user, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (*model.User, error) {
	session, err := s.sessionStore.GetValidByTokenHash(ctx, hashSessionToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessionStore.DeleteByTokenHash(ctx, hashSessionToken(token)); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, userID int64) (*model.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}
	session := &model.Session{
		ID:        id.New(),
		UserID:    userID,
		Token:     token,
		TokenHash: hashSessionToken(token),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionStore.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

// newSessionToken returns an unguessable bearer token. Snowflake IDs stay
// the row keys, but they are time-ordered and must never reach a cookie.
func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// hashSessionToken is what gets persisted and queried, so a leaked database
// dump does not yield usable cookies.
func hashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
