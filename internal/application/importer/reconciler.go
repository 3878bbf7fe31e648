package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DictReconciler resuelve nombres de una categoría de diccionario a IDs
// durante un lote de importación, creando las entradas que falten.
//
// El mapa nombre→id se precarga una sola vez al inicio del lote y se actualiza
// con cada entrada creada, de modo que N filas con el mismo nombre nuevo
// resuelven al mismo id y producen a lo sumo una creación. El alcance es el
// lote: dos lotes concurrentes trabajan sobre snapshots independientes y
// pueden crear entradas duplicadas con el mismo nombre (comportamiento
// documentado en DESIGN.md, no corregido aquí).
type DictReconciler struct {
	repo     repository.DictionaryRepository
	category entity.DictCategory
	actor    string
	byName   map[string]string // nombre -> id, snapshot del lote
}

// NewDictReconciler construye el reconciliador de una categoría para un lote.
func NewDictReconciler(repo repository.DictionaryRepository, category entity.DictCategory, actor string) *DictReconciler {
	return &DictReconciler{
		repo:     repo,
		category: category,
		actor:    actor,
		byName:   make(map[string]string),
	}
}

// Preload lista todas las entradas existentes de la categoría una única vez.
// Ante nombres repetidos en el store, la primera coincidencia es canónica.
func (r *DictReconciler) Preload(ctx context.Context) error {
	entries, err := r.repo.ListByCategory(ctx, r.category)
	if err != nil {
		return fmt.Errorf("precargar diccionario %s: %w", r.category, err)
	}
	for _, e := range entries {
		if _, ok := r.byName[e.Name]; !ok {
			r.byName[e.Name] = e.ID
		}
	}
	return nil
}

// Resolve devuelve el id para un nombre. Nombre vacío significa "sin
// referencia" (nil, nil): la clave foránea de la fila queda sin valor.
// En miss sintetiza la entrada (code = nombre, sortOrder = tamaño actual + 1),
// la persiste, la agrega al mapa y devuelve su id nuevo.
func (r *DictReconciler) Resolve(ctx context.Context, name string) (*string, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := r.byName[name]; ok {
		return &id, nil
	}

	now := time.Now()
	e := &entity.DictionaryEntry{
		ID:        uuid.New().String(),
		Category:  r.category,
		Code:      name,
		Name:      name,
		SortOrder: len(r.byName) + 1,
		CreatedBy: r.actor,
		CreatedAt: now,
		UpdatedBy: r.actor,
		UpdatedAt: now,
	}
	if err := r.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("crear entrada %q en diccionario %s: %w", name, r.category, err)
	}
	r.byName[name] = e.ID
	return &e.ID, nil
}

// Size cantidad de nombres conocidos por el lote (precargados + creados).
func (r *DictReconciler) Size() int { return len(r.byName) }
