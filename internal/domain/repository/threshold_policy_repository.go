package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ThresholdPolicyRepository define el puerto de persistencia para ThresholdPolicy.
// FindEnabledByType devuelve nil sin error si el tipo no tiene política habilitada.
type ThresholdPolicyRepository interface {
	Create(ctx context.Context, p *entity.ThresholdPolicy) error
	GetByID(ctx context.Context, id string) (*entity.ThresholdPolicy, error)
	FindEnabledByType(ctx context.Context, typeID string) (*entity.ThresholdPolicy, error)
	ListAll(ctx context.Context) ([]*entity.ThresholdPolicy, error)
	Update(ctx context.Context, p *entity.ThresholdPolicy) error
	Delete(ctx context.Context, id string) error
}
