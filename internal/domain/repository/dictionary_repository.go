package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// DictionaryRepository define el puerto de persistencia para los diccionarios
// de referencia (turno, departamento, rango, puesto). Un solo puerto
// parametrizado por categoría en lugar de cuatro repos casi idénticos.
// FindByName devuelve nil sin error si no hay coincidencia.
type DictionaryRepository interface {
	Create(ctx context.Context, e *entity.DictionaryEntry) error
	ListByCategory(ctx context.Context, category entity.DictCategory) ([]*entity.DictionaryEntry, error)
	FindByName(ctx context.Context, category entity.DictCategory, name string) (*entity.DictionaryEntry, error)
}
