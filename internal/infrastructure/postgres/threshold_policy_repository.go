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

var _ repository.ThresholdPolicyRepository = (*ThresholdPolicyRepo)(nil)

// ThresholdPolicyRepo implementación del puerto ThresholdPolicyRepository sobre PostgreSQL.
type ThresholdPolicyRepo struct {
	pool *pgxpool.Pool
}

// NewThresholdPolicyRepository construye el adaptador de persistencia para políticas de umbral.
func NewThresholdPolicyRepository(pool *pgxpool.Pool) *ThresholdPolicyRepo {
	return &ThresholdPolicyRepo{pool: pool}
}

const policyColumns = `id, type_id, threshold, enabled, created_at, updated_at`

// Create persiste una política nueva.
func (r *ThresholdPolicyRepo) Create(ctx context.Context, p *entity.ThresholdPolicy) error {
	query := `INSERT INTO threshold_policies (` + policyColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query, p.ID, p.TypeID, p.Threshold, p.Enabled, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert threshold policy: %w", err)
	}
	return nil
}

// GetByID obtiene una política por ID; nil si no existe.
func (r *ThresholdPolicyRepo) GetByID(ctx context.Context, id string) (*entity.ThresholdPolicy, error) {
	query := `SELECT ` + policyColumns + ` FROM threshold_policies WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

// FindEnabledByType devuelve la política habilitada del tipo; nil si no hay.
// Ante más de una (estado anómalo que el alta previene), la más antigua gana.
func (r *ThresholdPolicyRepo) FindEnabledByType(ctx context.Context, typeID string) (*entity.ThresholdPolicy, error) {
	query := `
		SELECT ` + policyColumns + ` FROM threshold_policies
		WHERE type_id = $1 AND enabled ORDER BY created_at LIMIT 1`
	return r.queryOne(ctx, query, typeID)
}

// ListAll lista todas las políticas.
func (r *ThresholdPolicyRepo) ListAll(ctx context.Context) ([]*entity.ThresholdPolicy, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+policyColumns+` FROM threshold_policies ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list threshold policies: %w", err)
	}
	defer rows.Close()
	var list []*entity.ThresholdPolicy
	for rows.Next() {
		var p entity.ThresholdPolicy
		if err := rows.Scan(&p.ID, &p.TypeID, &p.Threshold, &p.Enabled, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan threshold policy: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una política existente.
func (r *ThresholdPolicyRepo) Update(ctx context.Context, p *entity.ThresholdPolicy) error {
	query := `UPDATE threshold_policies SET threshold = $2, enabled = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, p.ID, p.Threshold, p.Enabled, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update threshold policy: %w", err)
	}
	return nil
}

// Delete elimina una política por ID.
func (r *ThresholdPolicyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM threshold_policies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete threshold policy: %w", err)
	}
	return nil
}

func (r *ThresholdPolicyRepo) queryOne(ctx context.Context, query string, arg any) (*entity.ThresholdPolicy, error) {
	var p entity.ThresholdPolicy
	err := r.pool.QueryRow(ctx, query, arg).Scan(&p.ID, &p.TypeID, &p.Threshold, &p.Enabled, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get threshold policy: %w", err)
	}
	return &p, nil
}
