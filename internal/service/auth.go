package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/session"
)

// AuthService handles admin login and logout over the session store.
type AuthService interface {
	// Login verifies credentials and creates a session. Only users
	// carrying the admin role may log in. Returns the opaque token.
	Login(ctx context.Context, email, password string) (string, *session.Session, error)

	// Logout deletes the session for the given token.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	sessions session.Store
	audit    repository.AuditRepository
	ttl      time.Duration
	log      *zap.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, sessions session.Store, audit repository.AuditRepository, ttl time.Duration, log *zap.Logger) AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &authService{users: users, sessions: sessions, audit: audit, ttl: ttl, log: log}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *session.Session, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			// Deliberately the same error as a bad password.
			return "", nil, ErrUnauthorized
		}
		return "", nil, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrUnauthorized
	}

	sess := &session.Session{UserID: user.ID, Roles: user.Roles}
	if !sess.HasRole(model.RoleAdmin) {
		return "", nil, ErrUnauthorized
	}

	token := uuid.NewString()
	if err := s.sessions.Set(ctx, token, sess, s.ttl); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	if err := s.audit.Write(ctx, &model.AuditLog{
		ID:          uuid.NewString(),
		Model:       "user",
		ModelID:     user.ID,
		Action:      "login",
		ActorUserID: user.ID,
		Meta:        map[string]any{},
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		s.log.Warn("audit write failed", zap.String("model", "user"), zap.Error(err))
	}

	return token, sess, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
