package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP: 404 para no
// encontrado, 400 para entrada inválida, 409 para duplicados y stock
// insuficiente, 401 para credenciales inválidas, 500 para el resto.
func respondError(c *fiber.Ctx, err error) error {
	var insErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &insErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: insErr.Error(),
			Details: dto.InsufficientStockDetails{
				ItemID:    insErr.ItemID,
				Available: insErr.Available,
				Requested: insErr.Requested,
			},
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// parseID lee el parámetro :id de la ruta; 0 y negativos son inválidos.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return int64(id), nil
}

// pageParams lee page/limit/search de la query con defaults y cotas.
func pageParams(c *fiber.Ctx) (page, limit int, search string) {
	page, limit = dto.NormalizePage(c.QueryInt("page", 1), c.QueryInt("limit", 10))
	return page, limit, c.Query("search")
}
