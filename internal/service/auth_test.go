package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"taskboard.app/server/common/id"
	"taskboard.app/server/internal/model"
	"taskboard.app/server/internal/service"
	"taskboard.app/server/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		svc      service.AuthService
		users    *mockUserStore
		sessions *mockSessionStore
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		sessions = &mockSessionStore{}
		svc = service.NewAuthService(users, sessions, 24*time.Hour)
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Register", func() {
		It("hashes the password and opens a session", func() {
			var created *model.User
			users.createFn = func(_ context.Context, user *model.User) error {
				created = user
				return nil
			}

			user, session, err := svc.Register(ctx, "Ana", "Ana@Example.com", "correct-horse")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("ana@example.com"))
			Expect(created.PasswordHash).NotTo(Equal("correct-horse"))
			Expect(bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse"))).To(Succeed())
			Expect(session.UserID).To(Equal(user.ID))
			Expect(sessions.createCalls).To(Equal(1))
		})

		It("issues a random bearer token, not an ID", func() {
			_, first, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse")
			Expect(err).NotTo(HaveOccurred())
			_, second, err := svc.Register(ctx, "Bea", "bea@example.com", "correct-horse")
			Expect(err).NotTo(HaveOccurred())

			Expect(len(first.Token)).To(BeNumerically(">=", 43))
			Expect(first.Token).NotTo(Equal(second.Token))
			Expect(first.Token).NotTo(Equal(strconv.FormatInt(first.ID, 10)))
			Expect(first.Token).NotTo(Equal(strconv.FormatInt(first.UserID, 10)))
		})

		It("stores only a hash of the token", func() {
			var stored *model.Session
			sessions.createFn = func(_ context.Context, session *model.Session) error {
				stored = session
				return nil
			}

			_, session, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse")
			Expect(err).NotTo(HaveOccurred())

			sum := sha256.Sum256([]byte(session.Token))
			Expect(stored.TokenHash).To(Equal(hex.EncodeToString(sum[:])))
			Expect(stored.TokenHash).NotTo(Equal(session.Token))
		})

		It("rejects short passwords", func() {
			_, _, err := svc.Register(ctx, "Ana", "ana@example.com", "short")
			Expect(err).To(MatchError(service.ErrValidation))
			Expect(users.createCalls).To(BeZero())
		})

		It("reports taken emails", func() {
			users.createFn = func(_ context.Context, _ *model.User) error {
				return store.ErrConflict
			}

			_, _, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse")
			Expect(err).To(MatchError(service.ErrEmailTaken))
		})
	})

	Describe("Login", func() {
		var hash []byte

		BeforeEach(func() {
			var err error
			hash, err = bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			users.getByEmailFn = func(_ context.Context, email string) (*model.User, error) {
				return &model.User{ID: 10, Email: email, PasswordHash: string(hash)}, nil
			}
		})

		It("returns the user and a fresh session", func() {
			user, session, err := svc.Login(ctx, "ana@example.com", "correct-horse")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(10)))
			Expect(session.UserID).To(Equal(int64(10)))
			Expect(session.ExpiresAt).To(BeTemporally(">", time.Now()))
		})

		It("rejects a wrong password", func() {
			_, _, err := svc.Login(ctx, "ana@example.com", "wrong-horse")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
			Expect(sessions.createCalls).To(BeZero())
		})

		It("rejects unknown emails with the same error", func() {
			users.getByEmailFn = func(_ context.Context, _ string) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, _, err := svc.Login(ctx, "ghost@example.com", "correct-horse")
			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})
	})

	Describe("ValidateSession", func() {
		It("looks the session up by token hash", func() {
			var lookedUp string
			sessions.getValidByTokenHashFn = func(_ context.Context, tokenHash string) (*model.Session, error) {
				lookedUp = tokenHash
				return &model.Session{ID: 77, UserID: 10, TokenHash: tokenHash, ExpiresAt: time.Now().Add(time.Hour)}, nil
			}
			users.getByIDFn = func(_ context.Context, uid int64) (*model.User, error) {
				return &model.User{ID: uid, Email: "ana@example.com"}, nil
			}

			user, err := svc.ValidateSession(ctx, "opaque-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(10)))

			sum := sha256.Sum256([]byte("opaque-token"))
			Expect(lookedUp).To(Equal(hex.EncodeToString(sum[:])))
		})

		It("accepts a token it issued itself", func() {
			var stored *model.Session
			sessions.createFn = func(_ context.Context, session *model.Session) error {
				stored = session
				return nil
			}
			sessions.getValidByTokenHashFn = func(_ context.Context, tokenHash string) (*model.Session, error) {
				if stored != nil && stored.TokenHash == tokenHash {
					return stored, nil
				}
				return nil, store.ErrNotFound
			}
			users.getByIDFn = func(_ context.Context, uid int64) (*model.User, error) {
				return &model.User{ID: uid, Email: "ana@example.com"}, nil
			}

			registered, session, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse")
			Expect(err).NotTo(HaveOccurred())

			user, err := svc.ValidateSession(ctx, session.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(registered.ID))
		})

		It("rejects a guessed session ID", func() {
			var stored *model.Session
			sessions.createFn = func(_ context.Context, session *model.Session) error {
				stored = session
				return nil
			}
			sessions.getValidByTokenHashFn = func(_ context.Context, tokenHash string) (*model.Session, error) {
				if stored != nil && stored.TokenHash == tokenHash {
					return stored, nil
				}
				return nil, store.ErrNotFound
			}

			_, session, err := svc.Register(ctx, "Ana", "ana@example.com", "correct-horse")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ValidateSession(ctx, strconv.FormatInt(session.ID, 10))
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})

		It("reports expired sessions", func() {
			sessions.getValidByTokenHashFn = func(_ context.Context, _ string) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.ValidateSession(ctx, "opaque-token")
			Expect(err).To(MatchError(service.ErrSessionExpired))
		})
	})

	Describe("Logout", func() {
		It("deletes the session by token hash", func() {
			deleted := ""
			sessions.deleteByTokenHashFn = func(_ context.Context, tokenHash string) error {
				deleted = tokenHash
				return nil
			}

			Expect(svc.Logout(ctx, "opaque-token")).To(Succeed())
			sum := sha256.Sum256([]byte("opaque-token"))
			Expect(deleted).To(Equal(hex.EncodeToString(sum[:])))
		})
	})
})
