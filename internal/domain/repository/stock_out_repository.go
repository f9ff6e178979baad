package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// StockOutRepository define el puerto de persistencia para salidas de stock
// (cabecera + líneas).
type StockOutRepository interface {
	// Create persiste cabecera y líneas; asigna ID y Date sobre la entidad.
	Create(stockOut *entity.StockOut) error
	// GetByID devuelve la salida con sus líneas, nil si no existe.
	GetByID(id int64) (*entity.StockOut, error)
	UpdateHeader(id int64, destination *string) error
	// ReplaceLines borra las líneas existentes e inserta las nuevas.
	ReplaceLines(id int64, lines []entity.StockOutLine) error
	// Delete elimina líneas y luego cabecera.
	Delete(id int64) error
	// List devuelve salidas ordenadas por fecha descendente más el total de filas.
	List(limit, offset int) ([]*entity.StockOut, int, error)
}
