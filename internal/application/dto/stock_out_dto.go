package dto

import "time"

// CreateStockOutRequest alta de salida de stock. Destination es opcional.
type CreateStockOutRequest struct {
	Destination *string            `json:"destination"`
	Items       []StockLineRequest `json:"items"`
}

// UpdateStockOutRequest edición de salida. Items == nil no toca las líneas.
type UpdateStockOutRequest struct {
	Destination *string            `json:"destination"`
	Items       []StockLineRequest `json:"items"`
}

// StockOutResponse salida con líneas; el total se deriva sumando las líneas.
type StockOutResponse struct {
	ID          int64               `json:"id"`
	Destination *string             `json:"destination"`
	Date        time.Time           `json:"date"`
	Total       int64               `json:"total"`
	Items       []StockLineResponse `json:"items"`
}

// StockOutListResponse página de salidas.
type StockOutListResponse struct {
	Data  []StockOutResponse `json:"data"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
