package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func seedDict(repo *fakeDictRepo, category entity.DictCategory, names ...string) {
	for i, n := range names {
		repo.entries = append(repo.entries, &entity.DictionaryEntry{
			ID:        "seed-" + string(category) + "-" + n,
			Category:  category,
			Code:      n,
			Name:      n,
			SortOrder: i + 1,
			CreatedAt: time.Now(),
		})
	}
	repo.created = 0 // lo sembrado no cuenta como creación del lote
}

func TestReconciler_HitNoCrea(t *testing.T) {
	repo := &fakeDictRepo{}
	seedDict(repo, entity.CategoryShift, "Mañana", "Noche")
	r := importer.NewDictReconciler(repo, entity.CategoryShift, "import")
	require.NoError(t, r.Preload(context.Background()))

	id, err := r.Resolve(context.Background(), "Noche")

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "seed-shift-Noche", *id)
	assert.Zero(t, repo.created, "un nombre precargado no genera creación")
}

func TestReconciler_NombreVacioEsSinReferencia(t *testing.T) {
	repo := &fakeDictRepo{}
	r := importer.NewDictReconciler(repo, entity.CategoryRank, "import")
	require.NoError(t, r.Preload(context.Background()))

	id, err := r.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Nil(t, id, "nombre en blanco deja la referencia sin valor, no es error")
	assert.Zero(t, repo.created)
}

func TestReconciler_MissCreaConCodigoIgualAlNombre(t *testing.T) {
	repo := &fakeDictRepo{}
	seedDict(repo, entity.CategoryDepartment, "Logística")
	r := importer.NewDictReconciler(repo, entity.CategoryDepartment, "operador1")
	require.NoError(t, r.Preload(context.Background()))

	id, err := r.Resolve(context.Background(), "Seguridad")

	require.NoError(t, err)
	require.NotNil(t, id)
	require.Equal(t, 1, repo.created)
	created := repo.entries[len(repo.entries)-1]
	assert.Equal(t, "Seguridad", created.Name)
	assert.Equal(t, "Seguridad", created.Code, "el código por defecto es el propio nombre")
	assert.Equal(t, 2, created.SortOrder, "sortOrder = tamaño del lote en memoria + 1")
	assert.Equal(t, "operador1", created.CreatedBy)
}

// TestReconciler_IdempotenciaDentroDelLote: N resoluciones del mismo nombre
// nuevo producen exactamente una creación y todos los ids resueltos son
// iguales. Es la razón de existir de la caché.
func TestReconciler_IdempotenciaDentroDelLote(t *testing.T) {
	repo := &fakeDictRepo{}
	r := importer.NewDictReconciler(repo, entity.CategoryTitle, "import")
	require.NoError(t, r.Preload(context.Background()))

	const n = 7
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := r.Resolve(context.Background(), "Supervisor")
		require.NoError(t, err)
		require.NotNil(t, id)
		ids = append(ids, *id)
	}

	assert.Equal(t, 1, repo.created, "a lo sumo una entrada nueva por nombre y lote")
	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id)
	}
}

func TestReconciler_PrimeraCoincidenciaEsCanonica(t *testing.T) {
	// El store no impone unicidad de nombre: ante duplicados preexistentes
	// la primera entrada listada gana.
	repo := &fakeDictRepo{}
	repo.entries = append(repo.entries,
		&entity.DictionaryEntry{ID: "dup-1", Category: entity.CategoryShift, Name: "Tarde"},
		&entity.DictionaryEntry{ID: "dup-2", Category: entity.CategoryShift, Name: "Tarde"},
	)
	r := importer.NewDictReconciler(repo, entity.CategoryShift, "import")
	require.NoError(t, r.Preload(context.Background()))

	id, err := r.Resolve(context.Background(), "Tarde")

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "dup-1", *id)
}

func TestReconciler_PreloadSoloSuCategoria(t *testing.T) {
	repo := &fakeDictRepo{}
	seedDict(repo, entity.CategoryShift, "Mañana")
	seedDict(repo, entity.CategoryRank, "Cabo")
	r := importer.NewDictReconciler(repo, entity.CategoryRank, "import")
	require.NoError(t, r.Preload(context.Background()))

	assert.Equal(t, 1, r.Size(), "solo carga entradas de su categoría")
}
