package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/application/ledger"
	"github.com/tu-usuario/wms-api/internal/application/usecase"
)

// StockHandler consulta de existencias.
type StockHandler struct {
	uc     *usecase.StockUseCase
	engine *ledger.StockLedgerUseCase
}

func NewStockHandler(uc *usecase.StockUseCase, engine *ledger.StockLedgerUseCase) *StockHandler {
	return &StockHandler{uc: uc, engine: engine}
}

// List godoc
// @Summary      Listar existencias
// @Description  Existencia actual de cada item por bodega
// @Tags         stocks
// @Produce      json
// @Success      200 {object} dto.StockListResponse
// @Security     BearerAuth
// @Router       /api/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Level godoc
// @Summary      Existencia de un item
// @Description  Devuelve la cantidad disponible; 0 si el item nunca tuvo movimientos
// @Tags         stocks
// @Produce      json
// @Param        id path int true "ID del item"
// @Param        warehouseId query int false "Bodega (por defecto la principal)"
// @Success      200 {object} map[string]int64
// @Security     BearerAuth
// @Router       /api/stocks/{id} [get]
func (h *StockHandler) Level(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	warehouseID := int64(c.QueryInt("warehouseId", 0))
	qty, err := h.engine.StockLevel(id, warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"itemId": id, "quantity": qty})
}
