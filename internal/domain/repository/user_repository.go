package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
	// List busca por nombre o email (insensible a mayúsculas) y devuelve
	// además el total sin paginar.
	List(search string, limit, offset int) ([]*entity.User, int, error)
}
