package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/ledger"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
)

// StockOutHandler endpoints de salidas de stock.
type StockOutHandler struct {
	engine *ledger.StockLedgerUseCase
}

func NewStockOutHandler(engine *ledger.StockLedgerUseCase) *StockOutHandler {
	return &StockOutHandler{engine: engine}
}

func toStockOutResponse(so *entity.StockOut) dto.StockOutResponse {
	items := make([]dto.StockLineResponse, 0, len(so.Lines))
	for _, l := range so.Lines {
		items = append(items, dto.StockLineResponse{ItemID: l.ItemID, ItemName: l.ItemName, Qty: l.Qty})
	}
	return dto.StockOutResponse{
		ID:          so.ID,
		Destination: so.Destination,
		Date:        so.Date,
		Total:       so.Total(),
		Items:       items,
	}
}

// Create godoc
// @Summary      Registrar salida de stock
// @Description  Verifica disponibilidad de todas las líneas antes de descontar; si alguna no alcanza, rechaza sin cambios
// @Tags         stock-outs
// @Accept       json
// @Produce      json
// @Param        stockOut body dto.CreateStockOutRequest true "Salida"
// @Success      201 {object} dto.StockOutResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Stock insuficiente"
// @Security     BearerAuth
// @Router       /api/stock-outs [post]
func (h *StockOutHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	so, err := h.engine.RecordStockOut(c.UserContext(), ledger.RecordStockOutInput{
		Destination: req.Destination,
		Lines:       toLedgerLines(req.Items),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockOutResponse(so))
}

// List godoc
// @Summary      Listar salidas de stock
// @Tags         stock-outs
// @Produce      json
// @Param        page query int false "Página"
// @Param        limit query int false "Tamaño de página"
// @Success      200 {object} dto.StockOutListResponse
// @Security     BearerAuth
// @Router       /api/stock-outs [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	page, limit, _ := pageParams(c)
	stockOuts, total, err := h.engine.ListStockOuts(limit, (page-1)*limit)
	if err != nil {
		return respondError(c, err)
	}
	data := make([]dto.StockOutResponse, 0, len(stockOuts))
	for _, so := range stockOuts {
		data = append(data, toStockOutResponse(so))
	}
	return c.JSON(dto.StockOutListResponse{Data: data, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary      Obtener salida de stock
// @Tags         stock-outs
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} dto.StockOutResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/stock-outs/{id} [get]
func (h *StockOutHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	so, err := h.engine.GetStockOut(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockOutResponse(so))
}

// Update godoc
// @Summary      Editar salida de stock
// @Description  Si se envían items, se valida disponibilidad para el nuevo conjunto, se revierte el efecto anterior y se aplica el nuevo
// @Tags         stock-outs
// @Accept       json
// @Produce      json
// @Param        id path int true "ID"
// @Param        stockOut body dto.UpdateStockOutRequest true "Campos a actualizar"
// @Success      200 {object} dto.StockOutResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Stock insuficiente"
// @Security     BearerAuth
// @Router       /api/stock-outs/{id} [put]
func (h *StockOutHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateStockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	so, err := h.engine.UpdateStockOut(c.UserContext(), id, ledger.UpdateStockOutInput{
		Destination: req.Destination,
		Lines:       toLedgerLines(req.Items),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockOutResponse(so))
}

// Delete godoc
// @Summary      Eliminar salida de stock
// @Description  Devuelve a las existencias las cantidades de la salida eliminada
// @Tags         stock-outs
// @Param        id path int true "ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/stock-outs/{id} [delete]
func (h *StockOutHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.engine.DeleteStockOut(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
