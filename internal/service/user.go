package service

import (
	"context"
	"log"

	"dnavault.com/internal/auth"
	"dnavault.com/internal/domain"
	"dnavault.com/internal/model"
)

// UserServiceImpl implements domain.UserService.
type UserServiceImpl struct {
	users  domain.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(users domain.UserRepository, tokens *auth.TokenManager) *UserServiceImpl {
	return &UserServiceImpl{users: users, tokens: tokens}
}

// Register creates an account with a bcrypt-hashed password.
func (s *UserServiceImpl) Register(ctx context.Context, email, password string, firstname, lastname *string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, domain.NewBadRequestError("email and password are required")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("Email already registered")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	user := &model.User{
		Email:        email,
		Firstname:    firstname,
		Lastname:     lastname,
		PasswordHash: hash,
	}
	// The unique index catches registrations racing past the pre-check.
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("UserService: registered user %d (%s)", user.ID, user.Email)
	return user, nil
}

// Login verifies credentials and returns a signed access token. Unknown
// email and wrong password produce the same error so callers cannot tell
// which one failed.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.NewBadRequestError("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return "", domain.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", domain.NewInternalError("failed to sign token", err)
	}
	return token, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	return user, nil
}

var _ domain.UserService = (*UserServiceImpl)(nil)
