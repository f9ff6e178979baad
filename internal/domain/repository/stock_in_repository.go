package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// StockInRepository define el puerto de persistencia para entradas de stock
// (cabecera + líneas).
type StockInRepository interface {
	// Create persiste cabecera y líneas; asigna ID y Date sobre la entidad.
	Create(stockIn *entity.StockIn) error
	// GetByID devuelve la entrada con sus líneas, nil si no existe.
	GetByID(id int64) (*entity.StockIn, error)
	UpdateHeader(id, supplierID, total int64) error
	// ReplaceLines borra las líneas existentes e inserta las nuevas.
	ReplaceLines(id int64, lines []entity.StockInLine) error
	// Delete elimina líneas y luego cabecera.
	Delete(id int64) error
	// List devuelve entradas ordenadas por fecha descendente más el total de filas.
	List(limit, offset int) ([]*entity.StockIn, int, error)
}
