package entity

import "time"

// Item artículo del catálogo. SKU y Barcode son únicos; Barcode, CategoryID y
// Unit son opcionales. MinStock es el umbral de reposición (>= 0).
type Item struct {
	ID         int64
	Name       string
	SKU        string
	Barcode    *string
	CategoryID *int64
	Unit       *string
	MinStock   int64
	CreatedAt  time.Time

	// CategoryName viene del join en lecturas; no se persiste.
	CategoryName *string
}
