package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/domain/status"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de persistencia para ítems.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

const itemColumns = `id, code, name, type_id, quantity, unit, location, specification,
		production_date, shelf_life_months, expiry_date, status, remark, deleted, created_at, updated_at`

// Create persiste un ítem nuevo. El constraint único de code se traduce a
// ErrDuplicateCode para que la capa de aplicación lo distinga.
func (r *ItemRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Code, item.Name, item.TypeID, item.Quantity, item.Unit,
		item.Location, item.Specification, item.ProductionDate, item.ShelfLifeMonths,
		item.ExpiryDate, string(item.Status), item.Remark, item.Deleted,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem activo por ID; nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1 AND NOT deleted`
	return r.queryOne(ctx, query, id)
}

// GetByCode obtiene un ítem activo por código; nil si no existe.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE code = $1 AND NOT deleted`
	return r.queryOne(ctx, query, code)
}

// Update actualiza un ítem existente, campos derivados incluidos.
func (r *ItemRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, type_id = $3, quantity = $4, unit = $5, location = $6,
		    specification = $7, production_date = $8, shelf_life_months = $9,
		    expiry_date = $10, status = $11, remark = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.TypeID, item.Quantity, item.Unit, item.Location,
		item.Specification, item.ProductionDate, item.ShelfLifeMonths,
		item.ExpiryDate, string(item.Status), item.Remark, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista los ítems activos.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE NOT deleted ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// SoftDelete marca el ítem como eliminado sin borrarlo físicamente.
func (r *ItemRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE inventory_items SET deleted = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) queryOne(ctx context.Context, query string, arg any) (*entity.InventoryItem, error) {
	item, err := scanItem(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	var st string
	err := row.Scan(
		&it.ID, &it.Code, &it.Name, &it.TypeID, &it.Quantity, &it.Unit,
		&it.Location, &it.Specification, &it.ProductionDate, &it.ShelfLifeMonths,
		&it.ExpiryDate, &st, &it.Remark, &it.Deleted, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	it.Status = status.Status(st)
	return &it, nil
}
