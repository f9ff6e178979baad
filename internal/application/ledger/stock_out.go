package ledger

import (
	"context"

	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// RecordStockOutInput entrada para registrar un despacho de mercancía.
type RecordStockOutInput struct {
	Destination *string
	Lines       []Line
}

// UpdateStockOutInput campos opcionales para editar una salida. Lines == nil
// significa no tocar las líneas; un slice no vacío reemplaza el conjunto
// completo.
type UpdateStockOutInput struct {
	Destination *string
	Lines       []Line
}

// RecordStockOut verifica disponibilidad de TODAS las líneas (con bloqueo de
// fila) antes de escribir nada; si alguna falla no hay aplicación parcial.
// Con el chequeo superado persiste cabecera + líneas y descuenta el stock.
func (uc *StockLedgerUseCase) RecordStockOut(ctx context.Context, in RecordStockOutInput) (*entity.StockOut, error) {
	if err := uc.validateLines(in.Lines); err != nil {
		return nil, err
	}

	stockOut := &entity.StockOut{
		Destination: in.Destination,
		Lines:       toStockOutLines(in.Lines),
	}

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		if err := uc.checkAvailability(stockRepo, in.Lines); err != nil {
			return err
		}
		if err := stockOutRepo.Create(stockOut); err != nil {
			return err
		}
		for _, l := range in.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, -l.Qty); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("stock_out_id", stockOut.ID).
		Int64("total", stockOut.Total()).
		Msg("salida de stock registrada")
	return uc.reloadStockOut(stockOut)
}

// UpdateStockOut edita una salida. Si vienen líneas: verificación de
// disponibilidad (ver availabilityCheckBeforeRevert), reversión de las líneas
// anteriores (incremento), descuento de las nuevas y reemplazo del conjunto.
// Sin líneas solo cambia la cabecera (destino).
func (uc *StockLedgerUseCase) UpdateStockOut(ctx context.Context, id int64, in UpdateStockOutInput) (*entity.StockOut, error) {
	existing, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	destination := existing.Destination
	if in.Destination != nil {
		destination = in.Destination
	}

	if in.Lines == nil {
		if err := uc.stockOutRepo.UpdateHeader(id, destination); err != nil {
			return nil, err
		}
		return uc.reloadStockOut(existing)
	}

	if err := uc.validateLines(in.Lines); err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		if availabilityCheckBeforeRevert {
			// Chequeo contra el stock actual, sin contar lo que liberará la
			// reversión de las líneas viejas.
			if err := uc.checkAvailability(stockRepo, in.Lines); err != nil {
				return err
			}
		}
		// Reversión: devolver lo que la salida había descontado
		for _, l := range existing.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, l.Qty); err != nil {
				return err
			}
		}
		if !availabilityCheckBeforeRevert {
			if err := uc.checkAvailability(stockRepo, in.Lines); err != nil {
				return err
			}
		}
		// Descuento de las líneas nuevas
		for _, l := range in.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, -l.Qty); err != nil {
				return err
			}
		}
		if err := stockOutRepo.ReplaceLines(id, toStockOutLines(in.Lines)); err != nil {
			return err
		}
		return stockOutRepo.UpdateHeader(id, destination)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("stock_out_id", id).Msg("salida de stock actualizada")
	return uc.reloadStockOut(existing)
}

// DeleteStockOut elimina una salida devolviendo al stock lo descontado, y
// borra líneas y cabecera.
func (uc *StockLedgerUseCase) DeleteStockOut(ctx context.Context, id int64) error {
	existing, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		for _, l := range existing.Lines {
			if err := uc.applyDelta(stockRepo, l.ItemID, l.Qty); err != nil {
				return err
			}
		}
		return stockOutRepo.Delete(id)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Int64("stock_out_id", id).Msg("salida de stock eliminada")
	return nil
}

// GetStockOut devuelve una salida con sus líneas.
func (uc *StockLedgerUseCase) GetStockOut(id int64) (*entity.StockOut, error) {
	stockOut, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stockOut == nil {
		return nil, domain.ErrNotFound
	}
	return stockOut, nil
}

// ListStockOuts lista salidas por fecha descendente con el total de filas.
func (uc *StockLedgerUseCase) ListStockOuts(limit, offset int) ([]*entity.StockOut, int, error) {
	return uc.stockOutRepo.List(limit, offset)
}

func (uc *StockLedgerUseCase) reloadStockOut(stockOut *entity.StockOut) (*entity.StockOut, error) {
	full, err := uc.stockOutRepo.GetByID(stockOut.ID)
	if err != nil || full == nil {
		return stockOut, nil
	}
	return full, nil
}
