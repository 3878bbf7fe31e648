package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RosterRepository define el puerto de persistencia para RosterEntry.
// Exists chequea el tuple (fecha, turno, persona) que el alta directa rechaza
// como duplicado; la importación masiva no lo consulta.
type RosterRepository interface {
	Create(ctx context.Context, e *entity.RosterEntry) error
	GetByID(ctx context.Context, id string) (*entity.RosterEntry, error)
	List(ctx context.Context) ([]*entity.RosterEntry, error)
	Exists(ctx context.Context, date time.Time, shiftID, personName string) (bool, error)
	Delete(ctx context.Context, id string) error
}
