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

// DictionaryUseCase casos de uso de los diccionarios de referencia
// (turno, departamento, rango, puesto).
type DictionaryUseCase struct {
	repo repository.DictionaryRepository
}

// NewDictionaryUseCase construye el caso de uso.
func NewDictionaryUseCase(repo repository.DictionaryRepository) *DictionaryUseCase {
	return &DictionaryUseCase{repo: repo}
}

// List lista las entradas de una categoría.
func (uc *DictionaryUseCase) List(ctx context.Context, category string) (*dto.DictionaryListResponse, error) {
	cat := entity.DictCategory(category)
	if !entity.KnownCategory(cat) {
		return nil, domain.ErrUnknownCategory
	}
	list, err := uc.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DictionaryEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toDictionaryEntryResponse(e))
	}
	return &dto.DictionaryListResponse{Category: category, Items: items, Total: len(items)}, nil
}

// Create crea una entrada en una categoría. Code vacío usa el nombre como
// código, el mismo criterio que la importación. El alta directa rechaza el
// nombre repetido dentro de la categoría; la importación resuelve contra la
// caché del lote y nunca pasa por aquí.
func (uc *DictionaryUseCase) Create(ctx context.Context, category, actor string, in dto.CreateDictionaryEntryRequest) (*dto.DictionaryEntryResponse, error) {
	cat := entity.DictCategory(category)
	if !entity.KnownCategory(cat) {
		return nil, domain.ErrUnknownCategory
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByName(ctx, cat, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEntry
	}

	code := in.Code
	if code == "" {
		code = in.Name
	}

	now := time.Now()
	e := &entity.DictionaryEntry{
		ID:        uuid.New().String(),
		Category:  cat,
		Code:      code,
		Name:      in.Name,
		SortOrder: in.SortOrder,
		CreatedBy: actor,
		CreatedAt: now,
		UpdatedBy: actor,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toDictionaryEntryResponse(e), nil
}

func toDictionaryEntryResponse(e *entity.DictionaryEntry) *dto.DictionaryEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.DictionaryEntryResponse{
		ID:        e.ID,
		Category:  string(e.Category),
		Code:      e.Code,
		Name:      e.Name,
		SortOrder: e.SortOrder,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
