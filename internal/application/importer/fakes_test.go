package importer_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Fakes in-memory de los puertos de persistencia para testear los pipelines
// sin base de datos. Cuentan las creaciones para poder afirmar cuántas
// entradas nuevas produjo un lote.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type fakeItemRepo struct {
	items      []*entity.InventoryItem
	createErrs map[string]error // nombre de ítem -> error forzado en Create
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{createErrs: map[string]error{}}
}

func (r *fakeItemRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	if err := r.createErrs[item.Name]; err != nil {
		return err
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.ID == id && !it.Deleted {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetByCode(_ context.Context, code string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.Code == code && !it.Deleted {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return fmt.Errorf("ítem %s no existe", item.ID)
}

func (r *fakeItemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if !it.Deleted {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) SoftDelete(_ context.Context, id string) error {
	for _, it := range r.items {
		if it.ID == id {
			it.Deleted = true
			return nil
		}
	}
	return nil
}

type fakeMaterialTypeRepo struct {
	types   []*entity.MaterialType
	created int
}

func (r *fakeMaterialTypeRepo) Create(_ context.Context, mt *entity.MaterialType) error {
	r.types = append(r.types, mt)
	r.created++
	return nil
}

func (r *fakeMaterialTypeRepo) GetByID(_ context.Context, id string) (*entity.MaterialType, error) {
	for _, mt := range r.types {
		if mt.ID == id {
			return mt, nil
		}
	}
	return nil, nil
}

func (r *fakeMaterialTypeRepo) ListAll(_ context.Context) ([]*entity.MaterialType, error) {
	return append([]*entity.MaterialType{}, r.types...), nil
}

func (r *fakeMaterialTypeRepo) Update(_ context.Context, mt *entity.MaterialType) error {
	for i, t := range r.types {
		if t.ID == mt.ID {
			r.types[i] = mt
			return nil
		}
	}
	return fmt.Errorf("tipo %s no existe", mt.ID)
}

type fakePolicyRepo struct {
	policies []*entity.ThresholdPolicy
}

func (r *fakePolicyRepo) Create(_ context.Context, p *entity.ThresholdPolicy) error {
	r.policies = append(r.policies, p)
	return nil
}

func (r *fakePolicyRepo) GetByID(_ context.Context, id string) (*entity.ThresholdPolicy, error) {
	for _, p := range r.policies {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePolicyRepo) FindEnabledByType(_ context.Context, typeID string) (*entity.ThresholdPolicy, error) {
	for _, p := range r.policies {
		if p.TypeID == typeID && p.Enabled {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePolicyRepo) ListAll(_ context.Context) ([]*entity.ThresholdPolicy, error) {
	return append([]*entity.ThresholdPolicy{}, r.policies...), nil
}

func (r *fakePolicyRepo) Update(_ context.Context, p *entity.ThresholdPolicy) error { return nil }

func (r *fakePolicyRepo) Delete(_ context.Context, id string) error { return nil }

type fakeDictRepo struct {
	entries []*entity.DictionaryEntry
	created int
}

func (r *fakeDictRepo) Create(_ context.Context, e *entity.DictionaryEntry) error {
	r.entries = append(r.entries, e)
	r.created++
	return nil
}

func (r *fakeDictRepo) ListByCategory(_ context.Context, category entity.DictCategory) ([]*entity.DictionaryEntry, error) {
	var out []*entity.DictionaryEntry
	for _, e := range r.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeDictRepo) FindByName(_ context.Context, category entity.DictCategory, name string) (*entity.DictionaryEntry, error) {
	for _, e := range r.entries {
		if e.Category == category && e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}

type fakeRosterRepo struct {
	entries []*entity.RosterEntry
}

func (r *fakeRosterRepo) Create(_ context.Context, e *entity.RosterEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeRosterRepo) GetByID(_ context.Context, id string) (*entity.RosterEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeRosterRepo) List(_ context.Context) ([]*entity.RosterEntry, error) {
	return append([]*entity.RosterEntry{}, r.entries...), nil
}

func (r *fakeRosterRepo) Exists(_ context.Context, date time.Time, shiftID, personName string) (bool, error) {
	for _, e := range r.entries {
		if e.Date.Equal(date) && e.ShiftID == shiftID && e.PersonName == personName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRosterRepo) Delete(_ context.Context, id string) error {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
