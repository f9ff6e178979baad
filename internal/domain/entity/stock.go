package entity

import "time"

// Stock existencia actual de un item en una bodega. Identidad compuesta
// (ItemID, WarehouseID); la fila se crea perezosamente con la primera entrada.
type Stock struct {
	ItemID      int64
	WarehouseID int64
	Quantity    int64
	UpdatedAt   time.Time

	// Nombres del join para el listado de existencias; no se persisten.
	ItemName      string
	WarehouseName string
}
