package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	domainErrors "github.com/polkiloo/resi/internal/domain/errors"
	"github.com/polkiloo/resi/internal/domain/model"
	"github.com/polkiloo/resi/internal/domain/repository"
	pkgAuth "github.com/polkiloo/resi/internal/pkg/auth"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

const placeholderPassword = "resi-placeholder-password"

// AuthUseCase handles user registration and session tokens.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy

	placeholderOnce sync.Once
	placeholderHash string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account. No token is issued; clients log in afterwards.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrMissingCredentials
	}
	if len(password) > maxPasswordBytes {
		return nil, domainErrors.ErrPasswordTooLong
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, strings.TrimSpace(name), email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return usr, nil
}

// Login validates credentials and returns the user together with a signed token.
// Unknown email and wrong password produce the same error.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			// Unknown accounts pay for a hash comparison too.
			_ = u.hasher.Compare(u.dummyHash(), password)
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(pkgAuth.Identity{UserID: usr.ID, Email: usr.Email})
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken decodes the identity carried by token.
func (u *AuthUseCase) ParseToken(token string) (pkgAuth.Identity, error) {
	if token == "" {
		return pkgAuth.Identity{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// dummyHash returns a hash produced by the configured hasher, so comparing
// against it costs the same as comparing against a stored password.
func (u *AuthUseCase) dummyHash() string {
	u.placeholderOnce.Do(func() {
		u.placeholderHash, _ = u.hasher.Hash(placeholderPassword)
	})
	return u.placeholderHash
}
