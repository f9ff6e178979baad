package dto

import "time"

// StockLineRequest línea de entrada/salida: qty unidades (>= 1) de un item.
type StockLineRequest struct {
	ItemID int64 `json:"itemId"`
	Qty    int64 `json:"qty"`
}

// StockLineResponse línea con el nombre del item.
type StockLineResponse struct {
	ItemID   int64  `json:"itemId"`
	ItemName string `json:"itemName,omitempty"`
	Qty      int64  `json:"qty"`
}

// CreateStockInRequest alta de entrada de stock.
type CreateStockInRequest struct {
	SupplierID int64              `json:"supplierId"`
	Items      []StockLineRequest `json:"items"`
}

// UpdateStockInRequest edición de entrada. Items == nil no toca las líneas;
// presente, reemplaza el conjunto completo.
type UpdateStockInRequest struct {
	SupplierID *int64             `json:"supplierId"`
	Items      []StockLineRequest `json:"items"`
}

// StockInResponse entrada con proveedor y líneas.
type StockInResponse struct {
	ID           int64               `json:"id"`
	SupplierID   int64               `json:"supplierId"`
	SupplierName string              `json:"supplierName,omitempty"`
	Date         time.Time           `json:"date"`
	Total        int64               `json:"total"`
	Items        []StockLineResponse `json:"items"`
}

// StockInListResponse página de entradas.
type StockInListResponse struct {
	Data  []StockInResponse `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
