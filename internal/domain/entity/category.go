package entity

import "time"

// Category categoría de items. El nombre es único; al eliminarla, los items
// quedan sin categoría (no se eliminan).
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
