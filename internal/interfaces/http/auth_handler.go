package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cakawam/cookbook/internal/application/auth"
	"github.com/Cakawam/cookbook/internal/application/dto"
)

// AuthHandler maneja el login contra la credencial de administración.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifica usuario/contraseña y devuelve un JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	token, err := h.uc.Login(in.User, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token})
}
