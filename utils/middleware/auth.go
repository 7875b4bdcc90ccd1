package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/utils/auth"
	"github.com/sahilchouksey/college-compass/utils/response"
)

// AuthMiddleware handles JWT authentication. Access is gated by a single
// allow-listed admin email; any other token holder is rejected.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	adminEmail string
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, adminEmail string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		adminEmail: adminEmail,
	}
}

// RequireAdmin is middleware that admits only the allow-listed admin account
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get token from Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Unauthorized(c, "Invalid authorization format")
		}

		tokenString := parts[1]

		// Validate token
		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		// Check if it's an access token
		if claims.TokenType != "access" {
			return response.Unauthorized(c, "Invalid token type")
		}

		// Only the allow-listed account reaches /admin
		if !strings.EqualFold(claims.Email, m.adminEmail) {
			return response.Forbidden(c, "Admin access required")
		}

		c.Locals("user_email", claims.Email)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// GetUserEmail extracts user email from context
func GetUserEmail(c *fiber.Ctx) (string, bool) {
	email := c.Locals("user_email")
	if email == nil {
		return "", false
	}
	e, ok := email.(string)
	return e, ok
}
