package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/codegen"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MaterialTypeUseCase casos de uso CRUD para tipos de material.
type MaterialTypeUseCase struct {
	repo repository.MaterialTypeRepository
}

// NewMaterialTypeUseCase construye el caso de uso.
func NewMaterialTypeUseCase(repo repository.MaterialTypeRepository) *MaterialTypeUseCase {
	return &MaterialTypeUseCase{repo: repo}
}

// Create crea un tipo de material; sin código se genera uno ("WZ-" + 8 hex),
// el mismo esquema que usa la importación al crear tipos al vuelo.
func (uc *MaterialTypeUseCase) Create(ctx context.Context, actor string, in dto.CreateMaterialTypeRequest) (*dto.MaterialTypeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	code := in.Code
	if code == "" {
		code = codegen.MaterialTypeCode()
	}
	enabled := true
	if in.Enabled != nil {
		enabled = *in.Enabled
	}

	now := time.Now()
	mt := &entity.MaterialType{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      in.Name,
		Color:     in.Color,
		Enabled:   enabled,
		SortOrder: in.SortOrder,
		CreatedBy: actor,
		CreatedAt: now,
		UpdatedBy: actor,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, mt); err != nil {
		return nil, err
	}
	return toMaterialTypeResponse(mt), nil
}

// Update actualiza un tipo de material.
func (uc *MaterialTypeUseCase) Update(ctx context.Context, id, actor string, in dto.UpdateMaterialTypeRequest) (*dto.MaterialTypeResponse, error) {
	mt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mt == nil {
		return nil, nil
	}
	if in.Name != nil {
		mt.Name = *in.Name
	}
	if in.Color != nil {
		mt.Color = *in.Color
	}
	if in.Enabled != nil {
		mt.Enabled = *in.Enabled
	}
	if in.SortOrder != nil {
		mt.SortOrder = *in.SortOrder
	}
	mt.UpdatedBy = actor
	mt.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, mt); err != nil {
		return nil, err
	}
	return toMaterialTypeResponse(mt), nil
}

// List lista el catálogo completo de tipos.
func (uc *MaterialTypeUseCase) List(ctx context.Context) (*dto.MaterialTypeListResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialTypeResponse, 0, len(list))
	for _, mt := range list {
		items = append(items, *toMaterialTypeResponse(mt))
	}
	return &dto.MaterialTypeListResponse{Items: items, Total: len(items)}, nil
}

func toMaterialTypeResponse(mt *entity.MaterialType) *dto.MaterialTypeResponse {
	if mt == nil {
		return nil
	}
	return &dto.MaterialTypeResponse{
		ID:        mt.ID,
		Code:      mt.Code,
		Name:      mt.Name,
		Color:     mt.Color,
		Enabled:   mt.Enabled,
		SortOrder: mt.SortOrder,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: mt.UpdatedAt,
	}
}
