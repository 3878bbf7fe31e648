package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ThresholdPolicyUseCase casos de uso de políticas de umbral de stock bajo.
// La unicidad "una política habilitada por tipo" se chequea acá, el modelo de
// datos no la impone.
type ThresholdPolicyUseCase struct {
	repo repository.ThresholdPolicyRepository
}

// NewThresholdPolicyUseCase construye el caso de uso.
func NewThresholdPolicyUseCase(repo repository.ThresholdPolicyRepository) *ThresholdPolicyUseCase {
	return &ThresholdPolicyUseCase{repo: repo}
}

// Create crea una política. Si viene habilitada (el valor por defecto) y el
// tipo ya tiene una política habilitada, se rechaza con ErrPolicyExists.
func (uc *ThresholdPolicyUseCase) Create(ctx context.Context, in dto.CreateThresholdPolicyRequest) (*dto.ThresholdPolicyResponse, error) {
	if in.TypeID == "" || in.Threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}
	if enabled {
		existing, err := uc.repo.FindEnabledByType(ctx, in.TypeID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrPolicyExists
		}
	}

	now := time.Now()
	p := &entity.ThresholdPolicy{
		ID:        uuid.New().String(),
		TypeID:    in.TypeID,
		Threshold: in.Threshold,
		Enabled:   enabled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toThresholdPolicyResponse(p), nil
}

// Update actualiza umbral y/o flag de habilitado.
func (uc *ThresholdPolicyUseCase) Update(ctx context.Context, id string, in dto.UpdateThresholdPolicyRequest) (*dto.ThresholdPolicyResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Threshold != nil {
		if *in.Threshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		p.Threshold = *in.Threshold
	}
	if in.Enabled != nil {
		// Habilitar una política deshabilitada repite el chequeo de unicidad
		if *in.Enabled && !p.Enabled {
			existing, err := uc.repo.FindEnabledByType(ctx, p.TypeID)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != p.ID {
				return nil, domain.ErrPolicyExists
			}
		}
		p.Enabled = *in.Enabled
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toThresholdPolicyResponse(p), nil
}

// List lista todas las políticas.
func (uc *ThresholdPolicyUseCase) List(ctx context.Context) (*dto.ThresholdPolicyListResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ThresholdPolicyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toThresholdPolicyResponse(p))
	}
	return &dto.ThresholdPolicyListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una política por ID.
func (uc *ThresholdPolicyUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toThresholdPolicyResponse(p *entity.ThresholdPolicy) *dto.ThresholdPolicyResponse {
	if p == nil {
		return nil
	}
	return &dto.ThresholdPolicyResponse{
		ID:        p.ID,
		TypeID:    p.TypeID,
		Threshold: p.Threshold,
		Enabled:   p.Enabled,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
