package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain/codegen"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MaterialTypeResolver resuelve nombres de tipo de material durante un lote de
// importación de ítems. El catálogo completo se lee una vez al inicio y el
// match es por igualdad exacta de nombre sobre la lista; en miss se crea el
// tipo con código generado ("WZ-" + 8 hex) y se agrega a la lista en memoria,
// igual que hace DictReconciler con su mapa.
type MaterialTypeResolver struct {
	repo  repository.MaterialTypeRepository
	actor string
	types []*entity.MaterialType
}

// NewMaterialTypeResolver construye el resolutor de tipos para un lote.
func NewMaterialTypeResolver(repo repository.MaterialTypeRepository, actor string) *MaterialTypeResolver {
	return &MaterialTypeResolver{repo: repo, actor: actor}
}

// Preload lee el catálogo de tipos completo una única vez.
func (r *MaterialTypeResolver) Preload(ctx context.Context) error {
	types, err := r.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("precargar tipos de material: %w", err)
	}
	r.types = types
	return nil
}

// Resolve devuelve el id del tipo con ese nombre exacto, creándolo si no
// existe. El tipo de material es referencia obligatoria del ítem: nombre
// vacío es error de fila, no "sin referencia".
func (r *MaterialTypeResolver) Resolve(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("el tipo de material es requerido")
	}
	for _, mt := range r.types {
		if mt.Name == name {
			return mt.ID, nil
		}
	}

	now := time.Now()
	mt := &entity.MaterialType{
		ID:        uuid.New().String(),
		Code:      codegen.MaterialTypeCode(),
		Name:      name,
		Enabled:   true,
		SortOrder: len(r.types) + 1,
		CreatedBy: r.actor,
		CreatedAt: now,
		UpdatedBy: r.actor,
		UpdatedAt: now,
	}
	if err := r.repo.Create(ctx, mt); err != nil {
		return "", fmt.Errorf("crear tipo de material %q: %w", name, err)
	}
	r.types = append(r.types, mt)
	return mt.ID, nil
}
