package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MaterialTypeRepository = (*MaterialTypeRepo)(nil)

// MaterialTypeRepo implementación del puerto MaterialTypeRepository sobre PostgreSQL.
type MaterialTypeRepo struct {
	pool *pgxpool.Pool
}

// NewMaterialTypeRepository construye el adaptador de persistencia para tipos de material.
func NewMaterialTypeRepository(pool *pgxpool.Pool) *MaterialTypeRepo {
	return &MaterialTypeRepo{pool: pool}
}

const materialTypeColumns = `id, code, name, color, enabled, sort_order, created_by, created_at, updated_by, updated_at`

// Create persiste un tipo de material nuevo.
func (r *MaterialTypeRepo) Create(ctx context.Context, mt *entity.MaterialType) error {
	query := `
		INSERT INTO material_types (` + materialTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		mt.ID, mt.Code, mt.Name, mt.Color, mt.Enabled, mt.SortOrder,
		mt.CreatedBy, mt.CreatedAt, mt.UpdatedBy, mt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID; nil si no existe.
func (r *MaterialTypeRepo) GetByID(ctx context.Context, id string) (*entity.MaterialType, error) {
	query := `SELECT ` + materialTypeColumns + ` FROM material_types WHERE id = $1`
	var mt entity.MaterialType
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&mt.ID, &mt.Code, &mt.Name, &mt.Color, &mt.Enabled, &mt.SortOrder,
		&mt.CreatedBy, &mt.CreatedAt, &mt.UpdatedBy, &mt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material type: %w", err)
	}
	return &mt, nil
}

// ListAll lista el catálogo completo en orden de presentación.
func (r *MaterialTypeRepo) ListAll(ctx context.Context) ([]*entity.MaterialType, error) {
	query := `SELECT ` + materialTypeColumns + ` FROM material_types ORDER BY sort_order, created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list material types: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialType
	for rows.Next() {
		var mt entity.MaterialType
		if err := rows.Scan(
			&mt.ID, &mt.Code, &mt.Name, &mt.Color, &mt.Enabled, &mt.SortOrder,
			&mt.CreatedBy, &mt.CreatedAt, &mt.UpdatedBy, &mt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan material type: %w", err)
		}
		list = append(list, &mt)
	}
	return list, rows.Err()
}

// Update actualiza un tipo existente.
func (r *MaterialTypeRepo) Update(ctx context.Context, mt *entity.MaterialType) error {
	query := `
		UPDATE material_types
		SET name = $2, color = $3, enabled = $4, sort_order = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		mt.ID, mt.Name, mt.Color, mt.Enabled, mt.SortOrder, mt.UpdatedBy, mt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material type: %w", err)
	}
	return nil
}
