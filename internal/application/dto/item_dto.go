package dto

import "time"

// CreateItemRequest alta de item. Barcode, CategoryID, Unit y MinStock son
// opcionales; MinStock por defecto 0.
type CreateItemRequest struct {
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	Barcode    *string `json:"barcode"`
	CategoryID *int64  `json:"categoryId"`
	Unit       *string `json:"unit"`
	MinStock   *int64  `json:"minStock"`
}

// UpdateItemRequest edición parcial de item: solo los campos presentes y no
// vacíos se aplican.
type UpdateItemRequest struct {
	Name       *string `json:"name"`
	SKU        *string `json:"sku"`
	Barcode    *string `json:"barcode"`
	CategoryID *int64  `json:"categoryId"`
	Unit       *string `json:"unit"`
	MinStock   *int64  `json:"minStock"`
}

// ItemResponse item con el nombre de su categoría (si tiene).
type ItemResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Barcode      *string   `json:"barcode"`
	CategoryID   *int64    `json:"categoryId"`
	CategoryName *string   `json:"categoryName,omitempty"`
	Unit         *string   `json:"unit"`
	MinStock     int64     `json:"minStock"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ItemListResponse página de items.
type ItemListResponse struct {
	Data  []ItemResponse `json:"data"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
