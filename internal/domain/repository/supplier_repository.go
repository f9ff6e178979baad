package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	// Delete elimina el proveedor y, en cascada, sus entradas de stock con sus
	// líneas (sin revertir existencias).
	Delete(id int64) error
	List(search string, limit, offset int) ([]*entity.Supplier, int, error)
}
