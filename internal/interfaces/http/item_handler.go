package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/usecase"
	"github.com/tu-usuario/wms-api/internal/domain"
)

// ItemHandler endpoints de items del catálogo.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item body dto.CreateItemRequest true "Item"
// @Success      201 {object} dto.ItemResponse
// @Failure      409 {object} dto.ErrorResponse "SKU o código de barras duplicado"
// @Security     BearerAuth
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar items
// @Tags         items
// @Produce      json
// @Param        page query int false "Página"
// @Param        limit query int false "Tamaño de página"
// @Param        search query string false "Filtro por nombre o SKU"
// @Success      200 {object} dto.ItemListResponse
// @Security     BearerAuth
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	page, limit, search := pageParams(c)
	resp, err := h.uc.List(search, page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary      Obtener item
// @Tags         items
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} dto.ItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar item
// @Description  Solo los campos presentes y no vacíos se aplican
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path int true "ID"
// @Param        item body dto.UpdateItemRequest true "Campos a actualizar"
// @Success      200 {object} dto.ItemResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	resp, err := h.uc.Update(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         items
// @Param        id path int true "ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
