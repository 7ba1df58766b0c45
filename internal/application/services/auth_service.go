package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/application/command"
	"taskboard/internal/domain/apperrors"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
	"taskboard/internal/infrastructure"
)

// dummyHash keeps Verify's cost flat when the username does not exist, so
// "unknown user" and "wrong password" look the same from outside.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService is the credential store and the session manager: it owns
// registration, credential verification, and the token-to-user mapping.
type AuthService struct {
	users      repositories.UserRepository
	sessions   infrastructure.SessionStore
	tokens     *infrastructure.TokenService
	sessionTTL time.Duration
}

func NewAuthService(
	users repositories.UserRepository,
	sessions infrastructure.SessionStore,
	tokens *infrastructure.TokenService,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// Register trims both fields, rejects empties and duplicates, and persists
// the user with a bcrypt hash. The unique index on username backstops the
// duplicate pre-check under concurrent registration.
func (s *AuthService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	user := entities.NewUser(cmd.Username, cmd.Password)
	validated, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrConflict
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, validated)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{UserID: created.ID}, nil
}

// Verify resolves a credential pair to a user id. Lookup is by exact
// username; unknown username and wrong password both return
// ErrInvalidCredentials.
func (s *AuthService) Verify(ctx context.Context, username, password string) (uint, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if user == nil {
		// Burn the same bcrypt work as the found-user path.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return 0, apperrors.ErrInvalidCredentials
	}

	if err := user.CheckPassword(password); err != nil {
		return 0, apperrors.ErrInvalidCredentials
	}
	return user.ID, nil
}

// EstablishSession creates a session for an already-verified user and
// returns the signed cookie value.
func (s *AuthService) EstablishSession(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	if err := s.sessions.Put(ctx, sessionID, userID); err != nil {
		return "", err
	}
	return s.tokens.Issue(sessionID, s.sessionTTL)
}

// Login verifies credentials and establishes a session in one step.
func (s *AuthService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	userID, err := s.Verify(ctx, cmd.Username, cmd.Password)
	if err != nil {
		return nil, err
	}

	cookie, err := s.EstablishSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{UserID: userID, Cookie: cookie}, nil
}

// CurrentUser resolves the caller from the inbound cookie value. Every
// failure mode means anonymous, never an error surfaced to the user.
func (s *AuthService) CurrentUser(ctx context.Context, cookieValue string) (uint, bool) {
	sessionID, err := s.tokens.Parse(cookieValue)
	if err != nil {
		return 0, false
	}

	userID, ok, err := s.sessions.Get(ctx, sessionID)
	if err != nil || !ok {
		return 0, false
	}
	return userID, true
}

// Logout invalidates the session behind the cookie value. Idempotent: a
// bad or already-dead token is a no-op.
func (s *AuthService) Logout(ctx context.Context, cookieValue string) {
	sessionID, err := s.tokens.Parse(cookieValue)
	if err != nil {
		return
	}
	_ = s.sessions.Delete(ctx, sessionID)
}

// FindUser looks up a user by id, e.g. to show the owner's name on the
// dashboard.
func (s *AuthService) FindUser(ctx context.Context, id uint) (*entities.User, error) {
	return s.users.FindByID(ctx, id)
}
