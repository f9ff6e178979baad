package entity

import "time"

// StockOutLine línea de una salida: qty unidades de un item.
type StockOutLine struct {
	ItemID int64
	Qty    int64

	// ItemName viene del join en lecturas; no se persiste.
	ItemName string
}

// StockOut salida de mercancía (despacho). No persiste un total; se deriva
// sumando las líneas. Destination es opcional.
type StockOut struct {
	ID          int64
	Destination *string
	Date        time.Time
	Lines       []StockOutLine
}

// Total suma de las cantidades de las líneas.
func (s *StockOut) Total() int64 {
	var total int64
	for _, l := range s.Lines {
		total += l.Qty
	}
	return total
}
