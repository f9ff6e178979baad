package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/auth"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
)

// AuthHandler endpoints de autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida credenciales y devuelve un token JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Credenciales"
// @Success      200 {object} dto.AuthResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	if req.Email == "" || req.Password == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
