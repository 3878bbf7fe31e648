package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/codegen"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/status"
)

// Fakes mínimos de los puertos usados por los casos de uso.

type memItemRepo struct{ items []*entity.InventoryItem }

func (r *memItemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	r.items = append(r.items, it)
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.ID == id && !it.Deleted {
			return it, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) GetByCode(_ context.Context, code string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.Code == code && !it.Deleted {
			return it, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	for i, x := range r.items {
		if x.ID == it.ID {
			r.items[i] = it
		}
	}
	return nil
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if !it.Deleted {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memItemRepo) SoftDelete(_ context.Context, id string) error {
	for _, it := range r.items {
		if it.ID == id {
			it.Deleted = true
		}
	}
	return nil
}

type memPolicyRepo struct{ policies []*entity.ThresholdPolicy }

func (r *memPolicyRepo) Create(_ context.Context, p *entity.ThresholdPolicy) error {
	r.policies = append(r.policies, p)
	return nil
}

func (r *memPolicyRepo) GetByID(_ context.Context, id string) (*entity.ThresholdPolicy, error) {
	for _, p := range r.policies {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPolicyRepo) FindEnabledByType(_ context.Context, typeID string) (*entity.ThresholdPolicy, error) {
	for _, p := range r.policies {
		if p.TypeID == typeID && p.Enabled {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPolicyRepo) ListAll(_ context.Context) ([]*entity.ThresholdPolicy, error) {
	return r.policies, nil
}

func (r *memPolicyRepo) Update(_ context.Context, p *entity.ThresholdPolicy) error { return nil }
func (r *memPolicyRepo) Delete(_ context.Context, id string) error                 { return nil }

type memRosterRepo struct{ entries []*entity.RosterEntry }

func (r *memRosterRepo) Create(_ context.Context, e *entity.RosterEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memRosterRepo) GetByID(_ context.Context, id string) (*entity.RosterEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memRosterRepo) List(_ context.Context) ([]*entity.RosterEntry, error) {
	return r.entries, nil
}

func (r *memRosterRepo) Exists(_ context.Context, date time.Time, shiftID, personName string) (bool, error) {
	for _, e := range r.entries {
		if e.Date.Equal(date) && e.ShiftID == shiftID && e.PersonName == personName {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRosterRepo) Delete(_ context.Context, id string) error { return nil }

type memDictRepo struct{ entries []*entity.DictionaryEntry }

func (r *memDictRepo) Create(_ context.Context, e *entity.DictionaryEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *memDictRepo) ListByCategory(_ context.Context, category entity.DictCategory) ([]*entity.DictionaryEntry, error) {
	var out []*entity.DictionaryEntry
	for _, e := range r.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memDictRepo) FindByName(_ context.Context, category entity.DictCategory, name string) (*entity.DictionaryEntry, error) {
	for _, e := range r.entries {
		if e.Category == category && e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

func TestItemCreate_GeneraCodigoYDerivaEstado(t *testing.T) {
	items := &memItemRepo{}
	uc := usecase.NewItemUseCase(items, &memPolicyRepo{}, codegen.New("WZ"))

	out, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:     "Extintor",
		TypeID:   "tipo-1",
		Quantity: decimal.NewFromInt(3),
	})

	require.NoError(t, err)
	assert.Regexp(t, `^WZ-\d{14}-[A-Z0-9]{5}$`, out.Code)
	assert.Equal(t, string(status.Low), out.Status, "3 <= umbral por defecto 5")
}

func TestItemCreate_CodigoExplicitoDuplicado(t *testing.T) {
	items := &memItemRepo{}
	items.items = append(items.items, &entity.InventoryItem{ID: "a", Code: "EXT-01"})
	uc := usecase.NewItemUseCase(items, &memPolicyRepo{}, codegen.New("WZ"))

	_, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Code: "EXT-01", Name: "Extintor", TypeID: "tipo-1", Quantity: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestItemUpdate_RecomputaEstado(t *testing.T) {
	items := &memItemRepo{}
	uc := usecase.NewItemUseCase(items, &memPolicyRepo{}, codegen.New("WZ"))
	out, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name: "Botiquín", TypeID: "tipo-1", Quantity: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	require.Equal(t, string(status.Normal), out.Status)

	cero := decimal.Zero
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateItemRequest{Quantity: &cero})

	require.NoError(t, err)
	assert.Equal(t, string(status.Out), updated.Status, "bajar la cantidad a 0 recomputa a Out")
}

func TestItemDelete_EsBajaLogica(t *testing.T) {
	items := &memItemRepo{}
	uc := usecase.NewItemUseCase(items, &memPolicyRepo{}, codegen.New("WZ"))
	out, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name: "Silbato", TypeID: "tipo-1", Quantity: decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Zero(t, list.Total, "la baja lógica excluye del listado")
	assert.Len(t, items.items, 1, "el registro sigue existiendo, marcado")
}

func TestItemDelete_IDInexistente(t *testing.T) {
	uc := usecase.NewItemUseCase(&memItemRepo{}, &memPolicyRepo{}, codegen.New("WZ"))

	err := uc.Delete(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Políticas de umbral ───────────────────────────────────────────────────────

func TestThresholdCreate_UnaHabilitadaPorTipo(t *testing.T) {
	uc := usecase.NewThresholdPolicyUseCase(&memPolicyRepo{})

	_, err := uc.Create(context.Background(), dto.CreateThresholdPolicyRequest{TypeID: "tipo-1", Threshold: 10})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateThresholdPolicyRequest{TypeID: "tipo-1", Threshold: 20})
	assert.ErrorIs(t, err, domain.ErrPolicyExists, "segunda política habilitada para el mismo tipo")

	// Deshabilitada sí se admite
	off := false
	_, err = uc.Create(context.Background(), dto.CreateThresholdPolicyRequest{TypeID: "tipo-1", Threshold: 20, Enabled: &off})
	assert.NoError(t, err)
}

func TestThresholdDelete_IDInexistente(t *testing.T) {
	uc := usecase.NewThresholdPolicyUseCase(&memPolicyRepo{})

	err := uc.Delete(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Diccionarios ──────────────────────────────────────────────────────────────

func TestDictionaryCreate_RechazaNombreRepetido(t *testing.T) {
	uc := usecase.NewDictionaryUseCase(&memDictRepo{})

	_, err := uc.Create(context.Background(), "shift", "admin", dto.CreateDictionaryEntryRequest{Name: "Mañana"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "shift", "admin", dto.CreateDictionaryEntryRequest{Name: "Mañana"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry,
		"el nombre repetido dentro de la misma categoría se rechaza en el alta directa")

	// El mismo nombre en otra categoría no es duplicado
	_, err = uc.Create(context.Background(), "department", "admin", dto.CreateDictionaryEntryRequest{Name: "Mañana"})
	assert.NoError(t, err)
}

// ── Cuadrante ─────────────────────────────────────────────────────────────────

func TestRosterCreate_RechazaDuplicadoExacto(t *testing.T) {
	uc := usecase.NewRosterUseCase(&memRosterRepo{})
	in := dto.CreateRosterEntryRequest{
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		ShiftID:    "turno-1",
		PersonName: "Ana Ruiz",
		Phone:      "600111222",
	}

	_, err := uc.Create(context.Background(), "admin", in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), "admin", in)
	assert.ErrorIs(t, err, domain.ErrDuplicateRoster,
		"el alta directa rechaza el tuple (fecha, turno, persona) repetido")

	// Cambiar la persona deja de ser duplicado
	in.PersonName = "Luis Mora"
	_, err = uc.Create(context.Background(), "admin", in)
	assert.NoError(t, err)
}
