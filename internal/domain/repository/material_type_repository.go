package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MaterialTypeRepository define el puerto de persistencia para MaterialType.
type MaterialTypeRepository interface {
	Create(ctx context.Context, mt *entity.MaterialType) error
	GetByID(ctx context.Context, id string) (*entity.MaterialType, error)
	ListAll(ctx context.Context) ([]*entity.MaterialType, error)
	Update(ctx context.Context, mt *entity.MaterialType) error
}
