package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// Delete elimina la categoría; los items referenciados quedan con
	// category_id NULL (FK ON DELETE SET NULL).
	Delete(id int64) error
	List(search string, limit, offset int) ([]*entity.Category, int, error)
}
