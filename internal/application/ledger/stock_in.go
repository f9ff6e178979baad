package ledger

import (
	"context"

	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// RecordStockInInput entrada para registrar una recepción de mercancía.
type RecordStockInInput struct {
	SupplierID int64
	Lines      []Line
}

// UpdateStockInInput campos opcionales para editar una entrada. Lines == nil
// significa no tocar las líneas (solo cabecera); un slice no vacío reemplaza
// el conjunto completo, nunca se fusiona.
type UpdateStockInInput struct {
	SupplierID *int64
	Lines      []Line
}

// RecordStockIn valida proveedor e items, persiste cabecera + líneas e
// incrementa el stock de cada item en la bodega por defecto (creando la fila
// si no existe). Una entrada siempre se acepta una vez es estructuralmente
// válida: no hay cota superior.
func (uc *StockLedgerUseCase) RecordStockIn(ctx context.Context, in RecordStockInInput) (*entity.StockIn, error) {
	if err := uc.validateLines(in.Lines); err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	stockIn := &entity.StockIn{
		SupplierID: in.SupplierID,
		Total:      sumLines(in.Lines),
		Lines:      toStockInLines(in.Lines),
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		if err := stockInRepo.Create(stockIn); err != nil {
			return err
		}
		for _, l := range in.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, l.Qty); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("stock_in_id", stockIn.ID).
		Int64("supplier_id", stockIn.SupplierID).
		Int64("total", stockIn.Total).
		Msg("entrada de stock registrada")
	return uc.reloadStockIn(stockIn)
}

// UpdateStockIn edita una entrada. Si vienen líneas, primero revierte el
// efecto de las líneas actuales y después aplica el de las nuevas, de modo que
// el stock refleje exactamente el efecto neto del reemplazo; el total se
// recalcula. Sin líneas solo cambia la cabecera (proveedor) y no hay mutación
// de stock. La fecha nunca cambia.
func (uc *StockLedgerUseCase) UpdateStockIn(ctx context.Context, id int64, in UpdateStockInInput) (*entity.StockIn, error) {
	existing, err := uc.stockInRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	supplierID := existing.SupplierID
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		supplierID = *in.SupplierID
	}

	if in.Lines == nil {
		if err := uc.stockInRepo.UpdateHeader(id, supplierID, existing.Total); err != nil {
			return nil, err
		}
		return uc.reloadStockIn(existing)
	}

	if err := uc.validateLines(in.Lines); err != nil {
		return nil, err
	}
	total := sumLines(in.Lines)

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		// Reversión: deshacer el efecto de cada línea anterior
		for _, l := range existing.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, -l.Qty); err != nil {
				return err
			}
		}
		// Aplicación: efecto de cada línea nueva
		for _, l := range in.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, l.Qty); err != nil {
				return err
			}
		}
		if err := stockInRepo.ReplaceLines(id, toStockInLines(in.Lines)); err != nil {
			return err
		}
		return stockInRepo.UpdateHeader(id, supplierID, total)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("stock_in_id", id).
		Int64("total", total).
		Msg("entrada de stock actualizada")
	return uc.reloadStockIn(existing)
}

// DeleteStockIn elimina una entrada restaurando el stock: decrementa cada item
// por la cantidad de su línea (sin piso en cero) y borra líneas y cabecera.
func (uc *StockLedgerUseCase) DeleteStockIn(ctx context.Context, id int64) error {
	existing, err := uc.stockInRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		for _, l := range existing.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, -l.Qty); err != nil {
				return err
			}
		}
		return stockInRepo.Delete(id)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Int64("stock_in_id", id).Msg("entrada de stock eliminada")
	return nil
}

// GetStockIn devuelve una entrada con sus líneas.
func (uc *StockLedgerUseCase) GetStockIn(id int64) (*entity.StockIn, error) {
	stockIn, err := uc.stockInRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stockIn == nil {
		return nil, domain.ErrNotFound
	}
	return stockIn, nil
}

// ListStockIns lista entradas por fecha descendente con el total de filas.
func (uc *StockLedgerUseCase) ListStockIns(limit, offset int) ([]*entity.StockIn, int, error) {
	return uc.stockInRepo.List(limit, offset)
}

// reloadStockIn recarga la entrada con los nombres del join; si la relectura
// falla devuelve la entidad en memoria.
func (uc *StockLedgerUseCase) reloadStockIn(stockIn *entity.StockIn) (*entity.StockIn, error) {
	full, err := uc.stockInRepo.GetByID(stockIn.ID)
	if err != nil || full == nil {
		return stockIn, nil
	}
	return full, nil
}
