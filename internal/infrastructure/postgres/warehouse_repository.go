package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// Create persiste una nueva bodega; asigna el ID sobre la entidad.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	err := r.pool.QueryRow(context.Background(), `
		INSERT INTO warehouses (name, location, created_at)
		VALUES ($1, $2, $3) RETURNING id`,
		warehouse.Name, warehouse.Location, warehouse.CreatedAt,
	).Scan(&warehouse.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID; nil si no existe.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, name, location, created_at FROM warehouses WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.Location, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// GetByName obtiene una bodega por nombre exacto; nil si no existe.
func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, name, location, created_at FROM warehouses WHERE name = $1`, name,
	).Scan(&w.ID, &w.Name, &w.Location, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse by name: %w", err)
	}
	return &w, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	_, err := r.pool.Exec(context.Background(), `
		UPDATE warehouses SET name = $2, location = $3 WHERE id = $1`,
		warehouse.ID, warehouse.Name, warehouse.Location,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// Delete elimina una bodega; el FK ON DELETE CASCADE elimina sus filas de stock.
func (r *WarehouseRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

// List busca por nombre (insensible a mayúsculas) con paginación; devuelve
// además el total sin paginar.
func (r *WarehouseRepo) List(search string, limit, offset int) ([]*entity.Warehouse, int, error) {
	ctx := context.Background()
	pattern := "%" + search + "%"
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, location, created_at FROM warehouses
		WHERE $1 = '' OR name ILIKE $2
		ORDER BY name ASC LIMIT $3 OFFSET $4`,
		search, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	var total int
	err = r.pool.QueryRow(ctx, `
		SELECT count(*) FROM warehouses WHERE $1 = '' OR name ILIKE $2`,
		search, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count warehouses: %w", err)
	}
	return list, total, nil
}
