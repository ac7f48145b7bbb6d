package api

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"dnavault.com/internal/auth"
	"dnavault.com/internal/config"
	"dnavault.com/internal/domain"
	"dnavault.com/internal/model"
)

type AuthHandler struct {
	users  domain.UserService
	repo   domain.UserRepository
	tokens *auth.TokenManager
}

func NewAuthHandler(users domain.UserService, repo domain.UserRepository, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, repo: repo, tokens: tokens}
}

type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new account
// POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{Success: false, Message: "Invalid request body"})
	}

	user, err := h.users.Register(c.Context(), req.Email, req.Password, req.Firstname, req.Lastname)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success: true,
		Message: "User registered successfully",
		Data:    fiber.Map{"id": user.ID, "email": user.Email},
	})
}

// Login verifies credentials and issues a bearer token
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{Success: false, Message: "Invalid request body"})
	}

	token, err := h.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// GetMe returns the authenticated account
// GET /auth/me
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*model.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(Envelope{Success: false, Message: "Unauthorized"})
	}
	return c.JSON(user)
}

// Logout revokes the presented token for the remainder of its lifetime
// POST /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if token != "" {
		if err := h.tokens.Revoke(c.Context(), token); err != nil {
			return handleError(c, domain.NewInternalError("failed to revoke token", err))
		}
	}
	return c.JSON(Envelope{Success: true, Message: "Logged out successfully"})
}

// EnsureAdminUser seeds the configured admin account when it does not exist
// yet. Existing accounts are left untouched.
func (h *AuthHandler) EnsureAdminUser(cfg config.AdminConfig) {
	if cfg.Email == "" || cfg.Password == "" {
		return
	}

	ctx := context.Background()
	existing, err := h.repo.FindByEmail(ctx, cfg.Email)
	if err != nil {
		log.Printf("Auth: admin seed lookup failed: %v", err)
		return
	}
	if existing != nil {
		return
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		log.Printf("Auth: failed to hash admin password: %v", err)
		return
	}

	admin := &model.User{
		Email:        cfg.Email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := h.repo.Insert(ctx, admin); err != nil {
		log.Printf("Auth: failed to create admin user: %v", err)
		return
	}
	log.Printf("Auth: created admin user %s", cfg.Email)
}
