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

// RosterUseCase casos de uso del cuadrante de turnos. El alta directa rechaza
// el duplicado exacto (fecha, turno, persona); la importación masiva no hace
// ese chequeo y la asimetría se preserva a propósito.
type RosterUseCase struct {
	repo repository.RosterRepository
}

// NewRosterUseCase construye el caso de uso.
func NewRosterUseCase(repo repository.RosterRepository) *RosterUseCase {
	return &RosterUseCase{repo: repo}
}

// Create alta directa de una entrada de cuadrante.
func (uc *RosterUseCase) Create(ctx context.Context, actor string, in dto.CreateRosterEntryRequest) (*dto.RosterEntryResponse, error) {
	if in.Date.IsZero() || in.ShiftID == "" || in.PersonName == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.repo.Exists(ctx, in.Date, in.ShiftID, in.PersonName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateRoster
	}

	now := time.Now()
	e := &entity.RosterEntry{
		ID:           uuid.New().String(),
		Date:         in.Date,
		ShiftID:      in.ShiftID,
		PersonName:   in.PersonName,
		Phone:        in.Phone,
		RankID:       in.RankID,
		DepartmentID: in.DepartmentID,
		TitleID:      in.TitleID,
		Remark:       in.Remark,
		CreatedBy:    actor,
		CreatedAt:    now,
		UpdatedBy:    actor,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toRosterEntryResponse(e), nil
}

// List lista todas las entradas del cuadrante.
func (uc *RosterUseCase) List(ctx context.Context) (*dto.RosterListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RosterEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toRosterEntryResponse(e))
	}
	return &dto.RosterListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una entrada por ID.
func (uc *RosterUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toRosterEntryResponse(e *entity.RosterEntry) *dto.RosterEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.RosterEntryResponse{
		ID:           e.ID,
		Date:         e.Date,
		ShiftID:      e.ShiftID,
		PersonName:   e.PersonName,
		Phone:        e.Phone,
		RankID:       e.RankID,
		DepartmentID: e.DepartmentID,
		TitleID:      e.TitleID,
		Remark:       e.Remark,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
