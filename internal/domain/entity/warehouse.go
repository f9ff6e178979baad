package entity

import "time"

// Warehouse bodega física. El nombre es único. Al eliminarla se eliminan en
// cascada sus filas de stock.
type Warehouse struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt time.Time
}
