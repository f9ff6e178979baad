package ledger

import (
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
	"github.com/tu-usuario/wms-api/pkg/logger"
)

// availabilityCheckBeforeRevert controla cuándo se verifica disponibilidad en
// la actualización de una salida: true = contra el stock actual, ANTES de
// revertir las líneas anteriores (comportamiento heredado del sistema
// original; puede rechazar actualizaciones que serían válidas una vez
// restaurado el stock de las líneas viejas). false = después de la reversión.
const availabilityCheckBeforeRevert = true

// Line línea de una entrada o salida: qty unidades (>= 1) de un item.
type Line struct {
	ItemID int64
	Qty    int64
}

// StockLedgerUseCase motor del libro de existencias: traduce altas, ediciones
// y bajas de entradas/salidas en deltas consistentes sobre Stock. Cada efecto
// es un delta con signo aplicado a un contador durable; una edición revierte
// primero el efecto anterior y aplica después el nuevo, y una baja restaura lo
// que la operación había movido.
type StockLedgerUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	supplierRepo repository.SupplierRepository
	stockRepo    repository.StockRepository
	stockInRepo  repository.StockInRepository
	stockOutRepo repository.StockOutRepository
	warehouseID  int64
	log          *logger.Logger
}

// NewStockLedgerUseCase construye el motor. warehouseID es la bodega implícita
// de todas las operaciones (configurable, no un literal fijo).
func NewStockLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	supplierRepo repository.SupplierRepository,
	stockRepo repository.StockRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
	warehouseID int64,
	log *logger.Logger,
) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		supplierRepo: supplierRepo,
		stockRepo:    stockRepo,
		stockInRepo:  stockInRepo,
		stockOutRepo: stockOutRepo,
		warehouseID:  warehouseID,
		log:          log,
	}
}

// StockLevel devuelve la cantidad actual para (item, bodega); 0 si no hay
// fila. warehouseID = 0 usa la bodega por defecto.
func (uc *StockLedgerUseCase) StockLevel(itemID, warehouseID int64) (int64, error) {
	if warehouseID == 0 {
		warehouseID = uc.warehouseID
	}
	stock, err := uc.stockRepo.Get(itemID, warehouseID)
	if err != nil {
		return 0, err
	}
	if stock == nil {
		return 0, nil
	}
	return stock.Quantity, nil
}

// validateLines valida estructura (no vacío, qty >= 1) y que cada item exista.
func (uc *StockLedgerUseCase) validateLines(lines []Line) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.ItemID <= 0 || l.Qty < 1 {
			return domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(l.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// applyDelta aplica un delta y deja un WARN si la cantidad resultante quedó
// negativa: la reversión de una entrada no tiene piso en cero (el stock pudo
// haberse consumido por una salida posterior) y el resultado negativo se
// conserva como señal de calidad de datos.
func (uc *StockLedgerUseCase) applyDelta(stockRepo repository.StockRepository, itemID, delta int64) error {
	newQty, err := stockRepo.ApplyDelta(itemID, uc.warehouseID, delta)
	if err != nil {
		return err
	}
	if newQty < 0 {
		uc.log.Warn().
			Int64("item_id", itemID).
			Int64("warehouse_id", uc.warehouseID).
			Int64("quantity", newQty).
			Msg("existencia negativa tras aplicar delta")
	}
	return nil
}

func sumLines(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.Qty
	}
	return total
}

// checkAvailability verifica, bloqueando cada fila, que el stock actual cubre
// cada línea solicitada. No escribe nada: si falla, la operación aborta sin
// efectos.
func (uc *StockLedgerUseCase) checkAvailability(stockRepo repository.StockRepository, lines []Line) error {
	for _, l := range lines {
		stock, err := stockRepo.GetForUpdate(l.ItemID, uc.warehouseID)
		if err != nil {
			return err
		}
		var available int64
		if stock != nil {
			available = stock.Quantity
		}
		if stock == nil || available < l.Qty {
			return &domain.InsufficientStockError{
				ItemID:    l.ItemID,
				Available: available,
				Requested: l.Qty,
			}
		}
	}
	return nil
}

func toStockInLines(lines []Line) []entity.StockInLine {
	out := make([]entity.StockInLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.StockInLine{ItemID: l.ItemID, Qty: l.Qty})
	}
	return out
}

func toStockOutLines(lines []Line) []entity.StockOutLine {
	out := make([]entity.StockOutLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.StockOutLine{ItemID: l.ItemID, Qty: l.Qty})
	}
	return out
}
