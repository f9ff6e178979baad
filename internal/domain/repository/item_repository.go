package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	GetByBarcode(barcode string) (*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id int64) error
	// List busca por nombre o SKU (insensible a mayúsculas).
	List(search string, limit, offset int) ([]*entity.Item, int, error)
}
