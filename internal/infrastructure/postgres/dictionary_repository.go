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

var _ repository.DictionaryRepository = (*DictionaryRepo)(nil)

// DictionaryRepo implementación del puerto DictionaryRepository sobre PostgreSQL.
// Las cuatro categorías comparten tabla, discriminadas por la columna category;
// no hay constraint de unicidad sobre (category, name): la reconciliación trata
// la primera coincidencia como canónica (ver DESIGN.md sobre lotes concurrentes).
type DictionaryRepo struct {
	pool *pgxpool.Pool
}

// NewDictionaryRepository construye el adaptador de persistencia para diccionarios.
func NewDictionaryRepository(pool *pgxpool.Pool) *DictionaryRepo {
	return &DictionaryRepo{pool: pool}
}

const dictColumns = `id, category, code, name, sort_order, created_by, created_at, updated_by, updated_at`

// Create persiste una entrada nueva.
func (r *DictionaryRepo) Create(ctx context.Context, e *entity.DictionaryEntry) error {
	query := `INSERT INTO dictionary_entries (` + dictColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, string(e.Category), e.Code, e.Name, e.SortOrder,
		e.CreatedBy, e.CreatedAt, e.UpdatedBy, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dictionary entry: %w", err)
	}
	return nil
}

// ListByCategory lista las entradas de una categoría en orden de presentación.
func (r *DictionaryRepo) ListByCategory(ctx context.Context, category entity.DictCategory) ([]*entity.DictionaryEntry, error) {
	query := `SELECT ` + dictColumns + ` FROM dictionary_entries WHERE category = $1 ORDER BY sort_order, created_at`
	rows, err := r.pool.Query(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("list dictionary %s: %w", category, err)
	}
	defer rows.Close()
	var list []*entity.DictionaryEntry
	for rows.Next() {
		e, err := scanDictEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// FindByName devuelve la primera entrada con ese nombre exacto; nil si no hay.
func (r *DictionaryRepo) FindByName(ctx context.Context, category entity.DictCategory, name string) (*entity.DictionaryEntry, error) {
	query := `
		SELECT ` + dictColumns + ` FROM dictionary_entries
		WHERE category = $1 AND name = $2 ORDER BY created_at LIMIT 1`
	e, err := scanDictEntry(r.pool.QueryRow(ctx, query, string(category), name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func scanDictEntry(row rowScanner) (*entity.DictionaryEntry, error) {
	var e entity.DictionaryEntry
	var cat string
	err := row.Scan(
		&e.ID, &cat, &e.Code, &e.Name, &e.SortOrder,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedBy, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan dictionary entry: %w", err)
	}
	e.Category = entity.DictCategory(cat)
	return &e, nil
}
