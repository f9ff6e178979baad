package dto

import "time"

// StockResponse existencia actual de un item en una bodega.
type StockResponse struct {
	ItemID        int64     `json:"itemId"`
	ItemName      string    `json:"itemName"`
	WarehouseID   int64     `json:"warehouseId"`
	WarehouseName string    `json:"warehouseName"`
	Quantity      int64     `json:"quantity"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StockListResponse listado completo de existencias (sin paginar).
type StockListResponse struct {
	Data []StockResponse `json:"data"`
}
