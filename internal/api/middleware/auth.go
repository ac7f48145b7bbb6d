package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"dnavault.com/internal/auth"
	"dnavault.com/internal/domain"
)

// RequireAuth resolves the bearer token to a stored user and stashes the
// identity in Locals for downstream handlers. Requests without a resolvable
// identity are rejected with 401 before any policy check runs.
func RequireAuth(tokens *auth.TokenManager, users domain.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Missing Authorization header"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Resolve(c.Context(), tokenString)
		if err != nil {
			var appErr *domain.AppError
			code := fiber.StatusUnauthorized
			msg := "Invalid or expired token"
			if errors.As(err, &appErr) {
				code = appErr.Code
				msg = appErr.Message
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "message": msg})
		}

		// The token only names an id; the role comes from the user row.
		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to resolve user"})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "User not found"})
		}

		c.Locals("requester", &domain.Requester{ID: user.ID, IsAdmin: user.IsAdmin})
		c.Locals("user", user)
		c.Locals("token", tokenString)

		return c.Next()
	}
}
