package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	// Delete elimina la bodega y en cascada sus filas de stock.
	Delete(id int64) error
	List(search string, limit, offset int) ([]*entity.Warehouse, int, error)
}
