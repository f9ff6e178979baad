package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor; asigna el ID sobre la entidad.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	err := r.pool.QueryRow(context.Background(), `
		INSERT INTO suppliers (name, phone, address, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		supplier.Name, supplier.Phone, supplier.Address, supplier.CreatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID; nil si no existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, name, phone, address, created_at FROM suppliers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Phone, &s.Address, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	_, err := r.pool.Exec(context.Background(), `
		UPDATE suppliers SET name = $2, phone = $3, address = $4 WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Address,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina el proveedor; el esquema elimina en cascada sus entradas de
// stock con sus líneas (las existencias no se revierten).
func (r *SupplierRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// List busca por nombre (insensible a mayúsculas) con paginación; devuelve
// además el total sin paginar.
func (r *SupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, int, error) {
	ctx := context.Background()
	pattern := "%" + search + "%"
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, phone, address, created_at FROM suppliers
		WHERE $1 = '' OR name ILIKE $2
		ORDER BY name ASC LIMIT $3 OFFSET $4`,
		search, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Address, &s.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	var total int
	err = r.pool.QueryRow(ctx, `
		SELECT count(*) FROM suppliers WHERE $1 = '' OR name ILIKE $2`,
		search, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}
	return list, total, nil
}
