package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación de StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste cabecera y líneas. La base asigna id y fecha, que quedan en
// la entidad.
func (r *StockOutRepo) Create(stockOut *entity.StockOut) error {
	ctx := context.Background()
	err := r.q.QueryRow(ctx, `
		INSERT INTO stock_outs (destination)
		VALUES ($1)
		RETURNING id, date`,
		stockOut.Destination,
	).Scan(&stockOut.ID, &stockOut.Date)
	if err != nil {
		return fmt.Errorf("insert stock_out: %w", err)
	}
	for _, l := range stockOut.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO stock_out_items (stock_out_id, item_id, qty)
			VALUES ($1, $2, $3)`,
			stockOut.ID, l.ItemID, l.Qty,
		)
		if err != nil {
			return fmt.Errorf("insert stock_out_item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene cabecera y líneas (con nombre de cada item); nil si no existe.
func (r *StockOutRepo) GetByID(id int64) (*entity.StockOut, error) {
	ctx := context.Background()
	var s entity.StockOut
	err := r.q.QueryRow(ctx, `
		SELECT id, destination, date FROM stock_outs WHERE id = $1`, id,
	).Scan(&s.ID, &s.Destination, &s.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock_out: %w", err)
	}
	lines, err := r.linesFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	s.Lines = lines[id]
	return &s, nil
}

// UpdateHeader actualiza el destino; la fecha es inmutable.
func (r *StockOutRepo) UpdateHeader(id int64, destination *string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE stock_outs SET destination = $2 WHERE id = $1`,
		id, destination,
	)
	if err != nil {
		return fmt.Errorf("update stock_out: %w", err)
	}
	return nil
}

// ReplaceLines borra las líneas existentes e inserta las nuevas en orden.
func (r *StockOutRepo) ReplaceLines(id int64, lines []entity.StockOutLine) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_out_items WHERE stock_out_id = $1`, id); err != nil {
		return fmt.Errorf("delete stock_out_items: %w", err)
	}
	for _, l := range lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO stock_out_items (stock_out_id, item_id, qty)
			VALUES ($1, $2, $3)`,
			id, l.ItemID, l.Qty,
		)
		if err != nil {
			return fmt.Errorf("insert stock_out_item: %w", err)
		}
	}
	return nil
}

// Delete elimina líneas y luego cabecera.
func (r *StockOutRepo) Delete(id int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_out_items WHERE stock_out_id = $1`, id); err != nil {
		return fmt.Errorf("delete stock_out_items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM stock_outs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete stock_out: %w", err)
	}
	return nil
}

// List devuelve salidas por fecha descendente, con líneas, más el total de filas.
func (r *StockOutRepo) List(limit, offset int) ([]*entity.StockOut, int, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, destination, date
		FROM stock_outs
		ORDER BY date DESC
		LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock_outs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOut
	var ids []int64
	for rows.Next() {
		var s entity.StockOut
		if err := rows.Scan(&s.ID, &s.Destination, &s.Date); err != nil {
			return nil, 0, fmt.Errorf("scan stock_out: %w", err)
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
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_outs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock_outs: %w", err)
	}
	return list, total, nil
}

// linesFor carga las líneas (con nombre de item) de un conjunto de salidas.
func (r *StockOutRepo) linesFor(ctx context.Context, ids []int64) (map[int64][]entity.StockOutLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.stock_out_id, l.item_id, i.name, l.qty
		FROM stock_out_items l
		JOIN items i ON i.id = l.item_id
		WHERE l.stock_out_id = ANY($1)
		ORDER BY l.id ASC`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock_out_items: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.StockOutLine)
	for rows.Next() {
		var parentID int64
		var l entity.StockOutLine
		if err := rows.Scan(&parentID, &l.ItemID, &l.ItemName, &l.Qty); err != nil {
			return nil, fmt.Errorf("scan stock_out_item: %w", err)
		}
		out[parentID] = append(out[parentID], l)
	}
	return out, rows.Err()
}
