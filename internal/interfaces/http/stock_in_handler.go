package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/ledger"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
)

// StockInHandler endpoints de entradas de stock.
type StockInHandler struct {
	engine *ledger.StockLedgerUseCase
}

func NewStockInHandler(engine *ledger.StockLedgerUseCase) *StockInHandler {
	return &StockInHandler{engine: engine}
}

// toLedgerLines convierte líneas del request. Devuelve nil si el request no
// trae líneas, lo que para ediciones significa "no tocar las líneas".
func toLedgerLines(items []dto.StockLineRequest) []ledger.Line {
	if items == nil {
		return nil
	}
	lines := make([]ledger.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, ledger.Line{ItemID: it.ItemID, Qty: it.Qty})
	}
	return lines
}

func toStockInResponse(si *entity.StockIn) dto.StockInResponse {
	items := make([]dto.StockLineResponse, 0, len(si.Lines))
	for _, l := range si.Lines {
		items = append(items, dto.StockLineResponse{ItemID: l.ItemID, ItemName: l.ItemName, Qty: l.Qty})
	}
	return dto.StockInResponse{
		ID:           si.ID,
		SupplierID:   si.SupplierID,
		SupplierName: si.SupplierName,
		Date:         si.Date,
		Total:        si.Total,
		Items:        items,
	}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Description  Crea la entrada y suma las cantidades a las existencias
// @Tags         stock-ins
// @Accept       json
// @Produce      json
// @Param        stockIn body dto.CreateStockInRequest true "Entrada"
// @Success      201 {object} dto.StockInResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse "Proveedor o item inexistente"
// @Security     BearerAuth
// @Router       /api/stock-ins [post]
func (h *StockInHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStockInRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	si, err := h.engine.RecordStockIn(c.UserContext(), ledger.RecordStockInInput{
		SupplierID: req.SupplierID,
		Lines:      toLedgerLines(req.Items),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockInResponse(si))
}

// List godoc
// @Summary      Listar entradas de stock
// @Tags         stock-ins
// @Produce      json
// @Param        page query int false "Página"
// @Param        limit query int false "Tamaño de página"
// @Success      200 {object} dto.StockInListResponse
// @Security     BearerAuth
// @Router       /api/stock-ins [get]
func (h *StockInHandler) List(c *fiber.Ctx) error {
	page, limit, _ := pageParams(c)
	stockIns, total, err := h.engine.ListStockIns(limit, (page-1)*limit)
	if err != nil {
		return respondError(c, err)
	}
	data := make([]dto.StockInResponse, 0, len(stockIns))
	for _, si := range stockIns {
		data = append(data, toStockInResponse(si))
	}
	return c.JSON(dto.StockInListResponse{Data: data, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary      Obtener entrada de stock
// @Tags         stock-ins
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} dto.StockInResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/stock-ins/{id} [get]
func (h *StockInHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	si, err := h.engine.GetStockIn(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockInResponse(si))
}

// Update godoc
// @Summary      Editar entrada de stock
// @Description  Si se envían items, reemplazan el conjunto completo: se revierte el efecto anterior y se aplica el nuevo
// @Tags         stock-ins
// @Accept       json
// @Produce      json
// @Param        id path int true "ID"
// @Param        stockIn body dto.UpdateStockInRequest true "Campos a actualizar"
// @Success      200 {object} dto.StockInResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/stock-ins/{id} [put]
func (h *StockInHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateStockInRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	si, err := h.engine.UpdateStockIn(c.UserContext(), id, ledger.UpdateStockInInput{
		SupplierID: req.SupplierID,
		Lines:      toLedgerLines(req.Items),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toStockInResponse(si))
}

// Delete godoc
// @Summary      Eliminar entrada de stock
// @Description  Resta de las existencias las cantidades de la entrada eliminada
// @Tags         stock-ins
// @Param        id path int true "ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/stock-ins/{id} [delete]
func (h *StockInHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.engine.DeleteStockIn(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
