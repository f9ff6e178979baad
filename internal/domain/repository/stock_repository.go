package repository

import "github.com/tu-usuario/wms-api/internal/domain/entity"

// StockRepository define el puerto para consultar/mutar existencias por
// (item, bodega). Toda mutación pasa por ApplyDelta: un incremento atómico en
// la base, nunca un "set" desde memoria, para que el efecto neto de cada
// operación sea reconstruible.
type StockRepository interface {
	// Get devuelve nil si no existe fila para el par (item, bodega).
	Get(itemID, warehouseID int64) (*entity.Stock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) durante la secuencia
	// verificar-luego-descontar de una salida. Devuelve nil si no hay fila.
	GetForUpdate(itemID, warehouseID int64) (*entity.Stock, error)
	// ApplyDelta suma delta (positivo o negativo) a la cantidad, creando la
	// fila con quantity = delta si no existe. Devuelve la cantidad resultante.
	ApplyDelta(itemID, warehouseID, delta int64) (int64, error)
	// ListAll devuelve todas las existencias con nombres de item y bodega,
	// ordenadas por nombre de item.
	ListAll() ([]*entity.Stock, error)
}
