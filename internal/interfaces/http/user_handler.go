package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/dto"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios.
type UserHandler struct {
	userUC *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// List maneja GET /api/users
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userUC.List(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(users)
}

// UpdateRole maneja PATCH /api/users/:id/role
// @Summary Cambiar rol de un usuario
// @Tags users
// @Accept json
// @Param id path string true "ID del usuario"
// @Param request body dto.UpdateRoleRequest true "Nuevo rol"
// @Success 204
// @Router /api/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	if err := h.userUC.UpdateRole(c.Context(), c.Params("id"), req.Role); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateProfile maneja PATCH /api/users/me
// @Summary Actualizar el perfil propio
// @Tags users
// @Accept json
// @Param request body dto.UpdateProfileRequest true "Perfil"
// @Success 204
// @Router /api/users/me [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_BODY", Message: "cuerpo inválido"})
	}
	if err := h.userUC.UpdateProfile(c.Context(), GetUserID(c), req.Name); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
