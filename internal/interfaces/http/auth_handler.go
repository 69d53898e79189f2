package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/auth"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	authUC *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(authUC *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register maneja POST /api/auth/register
// @Summary Registrar usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Datos del usuario"
// @Success 201 {object} dto.UserResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.authUC.RegisterUser(req)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login maneja POST /api/auth/login
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.authUC.Login(req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}
