package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la existencia actual de un item en una bodega; nil si no hay fila.
func (r *StockRepo) Get(itemID, warehouseID int64) (*entity.Stock, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, updated_at
		FROM stocks WHERE item_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID).Scan(
		&s.ItemID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la existencia y bloquea la fila (SELECT FOR UPDATE)
// para la secuencia verificar-luego-descontar; nil si no hay fila.
func (r *StockRepo) GetForUpdate(itemID, warehouseID int64) (*entity.Stock, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, updated_at
		FROM stocks WHERE item_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID).Scan(
		&s.ItemID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// ApplyDelta suma delta a la cantidad como incremento atómico en la base
// (nunca read-modify-write en memoria), creando la fila si no existe.
// Devuelve la cantidad resultante.
func (r *StockRepo) ApplyDelta(itemID, warehouseID, delta int64) (int64, error) {
	query := `
		INSERT INTO stocks (item_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = stocks.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING quantity`
	var quantity int64
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID, delta).Scan(&quantity)
	if err != nil {
		return 0, fmt.Errorf("apply stock delta: %w", err)
	}
	return quantity, nil
}

// ListAll devuelve todas las existencias con nombres de item y bodega.
func (r *StockRepo) ListAll() ([]*entity.Stock, error) {
	query := `
		SELECT s.item_id, i.name, s.warehouse_id, w.name, s.quantity, s.updated_at
		FROM stocks s
		JOIN items i ON i.id = s.item_id
		JOIN warehouses w ON w.id = s.warehouse_id
		ORDER BY i.name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ItemID, &s.ItemName, &s.WarehouseID, &s.WarehouseName, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
