package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hearthapp/hearth-api/internal/core/domain"
	"github.com/hearthapp/hearth-api/internal/core/ports"
	"github.com/hearthapp/hearth-api/internal/infrastructure/tracing"
)

// AccountService implements registration, login and token authentication.
type AccountService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewAccountService(users ports.UserRepository, tokens ports.TokenIssuer, hasher ports.PasswordHasher, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, tokens: tokens, hasher: hasher, log: log}
}

// Register creates an account. The existence check runs first so the common
// duplicate case never pays for hashing; the unique index on username still
// catches two registrations racing past it.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	ctx, span := tracing.StartSpan(ctx, "AccountService.Register")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("register: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return err
		}
		return fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("account registered")
	return nil
}

// Login checks the credentials and issues a bearer token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	ctx, span := tracing.StartSpan(ctx, "AccountService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("username", username).Msg("login for unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.log.Debug().Str("username", username).Msg("login with wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	return &ports.LoginResult{Token: token, Username: user.Username}, nil
}

// Authenticate resolves a bearer token to a live account.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	ctx, span := tracing.StartSpan(ctx, "AccountService.Authenticate")
	defer span.End()

	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	userID, err := s.tokens.Resolve(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	return &domain.Identity{UserID: user.ID, Username: user.Username}, nil
}

func (s *AccountService) Directory(ctx context.Context, caller domain.Identity) ([]*domain.User, error) {
	ctx, span := tracing.StartSpan(ctx, "AccountService.Directory")
	defer span.End()

	users, err := s.users.ListExcept(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}
	return users, nil
}
