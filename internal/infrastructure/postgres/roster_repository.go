package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.RosterRepository = (*RosterRepo)(nil)

// RosterRepo implementación del puerto RosterRepository sobre PostgreSQL.
type RosterRepo struct {
	pool *pgxpool.Pool
}

// NewRosterRepository construye el adaptador de persistencia para el cuadrante.
func NewRosterRepository(pool *pgxpool.Pool) *RosterRepo {
	return &RosterRepo{pool: pool}
}

const rosterColumns = `id, date, shift_id, person_name, phone, rank_id, department_id, title_id,
		remark, created_by, created_at, updated_by, updated_at`

// Create persiste una entrada de cuadrante nueva.
func (r *RosterRepo) Create(ctx context.Context, e *entity.RosterEntry) error {
	query := `
		INSERT INTO roster_entries (` + rosterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Date, e.ShiftID, e.PersonName, e.Phone,
		e.RankID, e.DepartmentID, e.TitleID, e.Remark,
		e.CreatedBy, e.CreatedAt, e.UpdatedBy, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert roster entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID; nil si no existe.
func (r *RosterRepo) GetByID(ctx context.Context, id string) (*entity.RosterEntry, error) {
	query := `SELECT ` + rosterColumns + ` FROM roster_entries WHERE id = $1`
	e, err := scanRosterEntry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// List lista el cuadrante completo, más reciente primero.
func (r *RosterRepo) List(ctx context.Context) ([]*entity.RosterEntry, error) {
	query := `SELECT ` + rosterColumns + ` FROM roster_entries ORDER BY date DESC, created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()
	var list []*entity.RosterEntry
	for rows.Next() {
		e, err := scanRosterEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Exists chequea el tuple (fecha, turno, persona) que el alta directa rechaza.
func (r *RosterRepo) Exists(ctx context.Context, date time.Time, shiftID, personName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM roster_entries WHERE date = $1 AND shift_id = $2 AND person_name = $3
		)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, date, shiftID, personName).Scan(&exists); err != nil {
		return false, fmt.Errorf("check roster duplicate: %w", err)
	}
	return exists, nil
}

// Delete elimina una entrada por ID.
func (r *RosterRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM roster_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete roster entry: %w", err)
	}
	return nil
}

func scanRosterEntry(row rowScanner) (*entity.RosterEntry, error) {
	var e entity.RosterEntry
	err := row.Scan(
		&e.ID, &e.Date, &e.ShiftID, &e.PersonName, &e.Phone,
		&e.RankID, &e.DepartmentID, &e.TitleID, &e.Remark,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedBy, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan roster entry: %w", err)
	}
	return &e, nil
}
