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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para items.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

const itemColumns = `
	i.id, i.name, i.sku, i.barcode, i.category_id, i.unit, i.min_stock, i.created_at, c.name
	FROM items i LEFT JOIN categories c ON c.id = i.category_id`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var i entity.Item
	err := row.Scan(&i.ID, &i.Name, &i.SKU, &i.Barcode, &i.CategoryID, &i.Unit, &i.MinStock, &i.CreatedAt, &i.CategoryName)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un nuevo item; asigna el ID sobre la entidad.
func (r *ItemRepo) Create(item *entity.Item) error {
	err := r.pool.QueryRow(context.Background(), `
		INSERT INTO items (name, sku, barcode, category_id, unit, min_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		item.Name, item.SKU, item.Barcode, item.CategoryID, item.Unit, item.MinStock, item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID (con nombre de categoría); nil si no existe.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	item, err := scanItem(r.pool.QueryRow(context.Background(),
		`SELECT`+itemColumns+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetBySKU obtiene un item por SKU; nil si no existe.
func (r *ItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	item, err := scanItem(r.pool.QueryRow(context.Background(),
		`SELECT`+itemColumns+` WHERE i.sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by sku: %w", err)
	}
	return item, nil
}

// GetByBarcode obtiene un item por código de barras; nil si no existe.
func (r *ItemRepo) GetByBarcode(barcode string) (*entity.Item, error) {
	item, err := scanItem(r.pool.QueryRow(context.Background(),
		`SELECT`+itemColumns+` WHERE i.barcode = $1`, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by barcode: %w", err)
	}
	return item, nil
}

// Update actualiza un item existente.
func (r *ItemRepo) Update(item *entity.Item) error {
	_, err := r.pool.Exec(context.Background(), `
		UPDATE items SET name = $2, sku = $3, barcode = $4, category_id = $5, unit = $6, min_stock = $7
		WHERE id = $1`,
		item.ID, item.Name, item.SKU, item.Barcode, item.CategoryID, item.Unit, item.MinStock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un item por ID.
func (r *ItemRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// List busca por nombre o SKU (insensible a mayúsculas) con paginación;
// devuelve además el total sin paginar.
func (r *ItemRepo) List(search string, limit, offset int) ([]*entity.Item, int, error) {
	ctx := context.Background()
	pattern := "%" + search + "%"
	rows, err := r.pool.Query(ctx,
		`SELECT`+itemColumns+`
		WHERE $1 = '' OR i.name ILIKE $2 OR i.sku ILIKE $2
		ORDER BY i.name ASC LIMIT $3 OFFSET $4`,
		search, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	var total int
	err = r.pool.QueryRow(ctx, `
		SELECT count(*) FROM items i WHERE $1 = '' OR i.name ILIKE $2 OR i.sku ILIKE $2`,
		search, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}
	return list, total, nil
}
