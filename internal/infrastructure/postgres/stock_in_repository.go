package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación de StockInRepository sobre PostgreSQL (usable con pool o tx).
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador de entradas. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste cabecera y líneas. La base asigna id y fecha, que quedan en
// la entidad.
func (r *StockInRepo) Create(stockIn *entity.StockIn) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO stock_ins (supplier_id, total)
		VALUES ($1, $2)
		RETURNING id, date`,
		stockIn.SupplierID, stockIn.Total,
	).Scan(&stockIn.ID, &stockIn.Date)
	if err != nil {
		return fmt.Errorf("insert stock_in: %w", err)
	}
	for _, l := range stockIn.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO stock_in_items (stock_in_id, item_id, qty)
			VALUES ($1, $2, $3)`,
			stockIn.ID, l.ItemID, l.Qty,
		)
		if err != nil {
			return fmt.Errorf("insert stock_in_item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene cabecera (con nombre del proveedor) y líneas (con nombre de
// cada item); nil si no existe.
func (r *StockInRepo) GetByID(id int64) (*entity.StockIn, error) {
	ctx := context.Background()
	var s entity.StockIn
	err := r.q.QueryRow(ctx, `
		SELECT si.id, si.supplier_id, sp.name, si.date, si.total
		FROM stock_ins si
		JOIN suppliers sp ON sp.id = si.supplier_id
		WHERE si.id = $1`, id,
	).Scan(&s.ID, &s.SupplierID, &s.SupplierName, &s.Date, &s.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_in: %w", err)
	}
	lines, err := r.linesFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	s.Lines = lines[id]
	return &s, nil
}

// UpdateHeader actualiza proveedor y total; la fecha es inmutable.
func (r *StockInRepo) UpdateHeader(id, supplierID, total int64) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE stock_ins SET supplier_id = $2, total = $3 WHERE id = $1`,
		id, supplierID, total,
	)
	if err != nil {
		return fmt.Errorf("update stock_in: %w", err)
	}
	return nil
}

// ReplaceLines borra las líneas existentes e inserta las nuevas en orden.
func (r *StockInRepo) ReplaceLines(id int64, lines []entity.StockInLine) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_in_items WHERE stock_in_id = $1`, id); err != nil {
		return fmt.Errorf("delete stock_in_items: %w", err)
	}
	for _, l := range lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO stock_in_items (stock_in_id, item_id, qty)
			VALUES ($1, $2, $3)`,
			id, l.ItemID, l.Qty,
		)
		if err != nil {
			return fmt.Errorf("insert stock_in_item: %w", err)
		}
	}
	return nil
}

// Delete elimina líneas y luego cabecera.
func (r *StockInRepo) Delete(id int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_in_items WHERE stock_in_id = $1`, id); err != nil {
		return fmt.Errorf("delete stock_in_items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_ins WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock_in: %w", err)
	}
	return nil
}

// List devuelve entradas por fecha descendente, con líneas, más el total de filas.
func (r *StockInRepo) List(limit, offset int) ([]*entity.StockIn, int, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT si.id, si.supplier_id, sp.name, si.date, si.total
		FROM stock_ins si
		JOIN suppliers sp ON sp.id = si.supplier_id
		ORDER BY si.date DESC
		LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock_ins: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockIn
	var ids []int64
	for rows.Next() {
		var s entity.StockIn
		if err := rows.Scan(&s.ID, &s.SupplierID, &s.SupplierName, &s.Date, &s.Total); err != nil {
			return nil, 0, fmt.Errorf("scan stock_in: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		lines, err := r.linesFor(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, s := range list {
			s.Lines = lines[s.ID]
		}
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_ins`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock_ins: %w", err)
	}
	return list, total, nil
}

// linesFor carga las líneas (con nombre de item) de un conjunto de entradas.
func (r *StockInRepo) linesFor(ctx context.Context, ids []int64) (map[int64][]entity.StockInLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.stock_in_id, l.item_id, i.name, l.qty
		FROM stock_in_items l
		JOIN items i ON i.id = l.item_id
		WHERE l.stock_in_id = ANY($1)
		ORDER BY l.id ASC`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock_in_items: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.StockInLine)
	for rows.Next() {
		var parentID int64
		var l entity.StockInLine
		if err := rows.Scan(&parentID, &l.ItemID, &l.ItemName, &l.Qty); err != nil {
			return nil, fmt.Errorf("scan stock_in_item: %w", err)
		}
		out[parentID] = append(out[parentID], l)
	}
	return out, rows.Err()
}
