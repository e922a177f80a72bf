package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/domain/repository"
	"github.com/inventrack/inventrack-api/pkg/jwt"
)

// UseCase operator login and session tokens. A single admin account is
// provisioned from configuration at boot.
type UseCase struct {
	users      repository.UserRepository
	secret     string
	issuer     string
	expMinutes int
}

// NewUseCase builds the use case.
func NewUseCase(users repository.UserRepository, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{users: users, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Login verifies credentials and issues a signed session token. Unknown
// email and wrong password return the same error.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	user, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(uc.secret, user.ID, user.Role, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(time.Duration(uc.expMinutes) * time.Minute)

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      toUserResponse(user),
	}, nil
}

// Me returns the operator identity for an authenticated user id.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// EnsureAdmin provisions or refreshes the configured admin account. Called
// once at boot so a fresh data directory always has a working login.
func (uc *UseCase) EnsureAdmin(name, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: admin email and password are required", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		user = &entity.User{
			ID:        uuid.New().String(),
			Email:     email,
			Role:      "admin",
			CreatedAt: time.Now(),
		}
	}
	user.Name = name
	user.PasswordHash = string(hash)
	return uc.users.Save(user)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
