package entity

import "time"

// StockInLine línea de una entrada: qty unidades de un item.
type StockInLine struct {
	ItemID int64
	Qty    int64

	// ItemName viene del join en lecturas; no se persiste.
	ItemName string
}

// StockIn entrada de mercancía (recepción). Total es la suma de las líneas y
// se recalcula en cada reemplazo del conjunto de líneas. Date es inmutable.
type StockIn struct {
	ID         int64
	SupplierID int64
	Date       time.Time
	Total      int64
	Lines      []StockInLine

	// SupplierName viene del join en lecturas; no se persiste.
	SupplierName string
}
