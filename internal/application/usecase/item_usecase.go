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
	"github.com/jhoicas/Almacen-api/internal/domain/status"
)

// ItemUseCase casos de uso de ítems de almacén. El estado y el vencimiento
// son derivados: se recomputan en cada alta y actualización.
type ItemUseCase struct {
	items    repository.ItemRepository
	policies repository.ThresholdPolicyRepository
	codes    *codegen.Generator
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	items repository.ItemRepository,
	policies repository.ThresholdPolicyRepository,
	codes *codegen.Generator,
) *ItemUseCase {
	return &ItemUseCase{items: items, policies: policies, codes: codes}
}

// Create crea un ítem. Sin código se genera uno único; con código explícito
// se rechaza el duplicado.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.TypeID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	code := in.Code
	if code != "" {
		existing, err := uc.items.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateCode
		}
	} else {
		var err error
		code, err = uc.generateCode(ctx)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:              uuid.New().String(),
		Code:            code,
		Name:            in.Name,
		TypeID:          in.TypeID,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		Location:        in.Location,
		Specification:   in.Specification,
		ProductionDate:  in.ProductionDate,
		ShelfLifeMonths: in.ShelfLifeMonths,
		Remark:          in.Remark,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.refreshDerived(ctx, item); err != nil {
		return nil, err
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un ítem activo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update aplica un patch y recomputa vencimiento y estado.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.TypeID != nil {
		item.TypeID = *in.TypeID
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	if in.Specification != nil {
		item.Specification = *in.Specification
	}
	if in.ProductionDate != nil {
		item.ProductionDate = in.ProductionDate
	}
	if in.ShelfLifeMonths != nil {
		item.ShelfLifeMonths = in.ShelfLifeMonths
	}
	if in.Remark != nil {
		item.Remark = *in.Remark
	}
	item.UpdatedAt = time.Now()

	if err := uc.refreshDerived(ctx, item); err != nil {
		return nil, err
	}
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista los ítems activos (la baja lógica los excluye).
func (uc *ItemUseCase) List(ctx context.Context) (*dto.ItemListResponse, error) {
	list, err := uc.items.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: items, Total: len(items)}, nil
}

// Delete marca el ítem como eliminado sin borrarlo físicamente.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.items.SoftDelete(ctx, id)
}

// refreshDerived recomputa expiry y status con el umbral vigente del tipo.
func (uc *ItemUseCase) refreshDerived(ctx context.Context, item *entity.InventoryItem) error {
	item.ComputeExpiry()
	var threshold *int
	policy, err := uc.policies.FindEnabledByType(ctx, item.TypeID)
	if err != nil {
		return err
	}
	if policy != nil {
		threshold = &policy.Threshold
	}
	item.Status = status.Compute(item.Quantity, item.ExpiryDate, threshold)
	return nil
}

func (uc *ItemUseCase) generateCode(ctx context.Context) (string, error) {
	var checkErr error
	code := uc.codes.Generate(func(candidate string) bool {
		if checkErr != nil {
			return false
		}
		existing, err := uc.items.GetByCode(ctx, candidate)
		if err != nil {
			checkErr = err
			return false
		}
		return existing != nil
	})
	if checkErr != nil {
		return "", checkErr
	}
	return code, nil
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              it.ID,
		Code:            it.Code,
		Name:            it.Name,
		TypeID:          it.TypeID,
		Quantity:        it.Quantity,
		Unit:            it.Unit,
		Location:        it.Location,
		Specification:   it.Specification,
		ProductionDate:  it.ProductionDate,
		ShelfLifeMonths: it.ShelfLifeMonths,
		ExpiryDate:      it.ExpiryDate,
		Status:          string(it.Status),
		Remark:          it.Remark,
		CreatedAt:       it.CreatedAt,
		UpdatedAt:       it.UpdatedAt,
	}
}
