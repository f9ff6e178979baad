package entity

import "time"

// Supplier proveedor de entradas de stock. Phone y Address son opcionales.
type Supplier struct {
	ID        int64
	Name      string
	Phone     *string
	Address   *string
	CreatedAt time.Time
}
