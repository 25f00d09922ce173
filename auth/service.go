// Package auth implements credential storage, token issuance and the access
// control decisions used by the request layer.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
	"github.com/Alexander2005-rgb/Quiz-application/models"
	"github.com/Alexander2005-rgb/Quiz-application/storage"
)

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so a caller cannot enumerate accounts.
	ErrInvalidCredentials = apperr.New(apperr.KindAuthentication, apperr.CodeInvalidCredentials, "invalid credentials")
	ErrDuplicateUsername  = apperr.New(apperr.KindConflict, apperr.CodeDuplicateUsername, "username already exists")
)

type Service struct {
	users  storage.UserStorage
	hasher PasswordHasher
	tokens *TokenService
}

func NewService(users storage.UserStorage, hasher PasswordHasher, tokens *TokenService) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new account. Role defaults to user when empty. The
// insert is conditional on the username being free; the storage layer's
// unique constraint decides, so two concurrent registrations cannot both
// succeed.
func (s *Service) Register(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	if username == "" {
		return nil, apperr.MissingField("username")
	}
	if password == "" {
		return nil, apperr.MissingField("password")
	}
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, apperr.New(apperr.KindValidation, apperr.CodeInvalidBody, fmt.Sprintf("unknown role %q", role))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.InsertUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token for the account.
func (s *Service) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	if username == "" {
		return "", nil, apperr.MissingField("username")
	}
	if password == "" {
		return "", nil, apperr.MissingField("password")
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, apperr.Internal(err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, user, nil
}

// Authenticate verifies a bearer token and returns its claims. Any failure
// short-circuits: no protected operation runs without valid claims.
func (s *Service) Authenticate(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

// Authorize is the single role predicate used by every gated route.
func Authorize(required models.Role, claims *Claims) error {
	if claims == nil || claims.Role != required {
		return apperr.New(apperr.KindAuthorization, apperr.CodeForbiddenRole, string(required)+" access required")
	}
	return nil
}

// AuthorizeAdmin rejects claims that do not carry the admin role.
func AuthorizeAdmin(claims *Claims) error {
	return Authorize(models.RoleAdmin, claims)
}
