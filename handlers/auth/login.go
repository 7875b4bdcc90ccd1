package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/utils/auth"
	"github.com/sahilchouksey/college-compass/utils/response"
	"github.com/sahilchouksey/college-compass/utils/validation"
)

// AuthHandler handles the single-admin login flow. There is no user
// table: only the allow-listed admin email with its configured password
// hash can obtain a token.
type AuthHandler struct {
	jwtManager        *auth.JWTManager
	validator         *validation.Validator
	adminEmail        string
	adminPasswordHash string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtManager *auth.JWTManager, adminEmail, adminPasswordHash string) *AuthHandler {
	return &AuthHandler{
		jwtManager:        jwtManager,
		validator:         validation.NewValidator(),
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // in seconds
}

// Login handles admin login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// A non-matching email gets the same response as a bad password.
	if !strings.EqualFold(req.Email, h.adminEmail) {
		return response.Unauthorized(c, "Invalid email or password")
	}

	if err := auth.VerifyPassword(h.adminPasswordHash, req.Password); err != nil {
		return response.Unauthorized(c, "Invalid email or password")
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(h.adminEmail)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	return response.Success(c, LoginResponse{
		Email:       h.adminEmail,
		AccessToken: accessToken,
		ExpiresIn:   24 * 60 * 60,
	})
}
