package importer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// rosterGrid arma una grilla de cuadrante con dos filas de cabecera (layout:
// date, shift, person, phone, rank, department, title, remark).
func rosterGrid(dataRows ...[]string) *importer.SliceGrid {
	rows := [][]string{
		{"Cuadrante de turnos", "", "", "", "", "", "", ""},
		{"Fecha", "Turno", "Persona", "Teléfono", "Rango", "Departamento", "Puesto", "Observaciones"},
	}
	rows = append(rows, dataRows...)
	return &importer.SliceGrid{Rows: rows}
}

func newRosterImporter(roster *fakeRosterRepo, dicts *fakeDictRepo) *importer.RosterImporter {
	return importer.NewRosterImporter(roster, dicts, nil, testLogger(), headerRows)
}

func TestRosterImport_ResuelveCuatroCategoriasPorFila(t *testing.T) {
	roster := &fakeRosterRepo{}
	dicts := &fakeDictRepo{}
	imp := newRosterImporter(roster, dicts)

	result, err := imp.Import(context.Background(), rosterGrid(
		[]string{"2025-06-01", "Mañana", "Ana Ruiz", "600111222", "Cabo", "Seguridad", "Vigilante", ""},
	))

	require.NoError(t, err)
	require.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 4, dicts.created, "turno, rango, departamento y puesto nuevos: una entrada por categoría")

	require.Len(t, roster.entries, 1)
	e := roster.entries[0]
	assert.Equal(t, "Ana Ruiz", e.PersonName)
	assert.NotEmpty(t, e.ShiftID)
	require.NotNil(t, e.RankID)
	require.NotNil(t, e.DepartmentID)
	require.NotNil(t, e.TitleID)
}

func TestRosterImport_ReferenciasOpcionalesEnBlanco(t *testing.T) {
	roster := &fakeRosterRepo{}
	dicts := &fakeDictRepo{}
	imp := newRosterImporter(roster, dicts)

	result, err := imp.Import(context.Background(), rosterGrid(
		[]string{"2025-06-01", "Noche", "Luis Mora", "600333444", "", "", "", "sin extras"},
	))

	require.NoError(t, err)
	require.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, dicts.created, "solo el turno era nuevo; los opcionales en blanco no crean nada")
	e := roster.entries[0]
	assert.Nil(t, e.RankID)
	assert.Nil(t, e.DepartmentID)
	assert.Nil(t, e.TitleID)
}

// TestRosterImport_MismoTurnoEnVariasFilas: la caché de lote garantiza que el
// mismo nombre de turno repetido en N filas crea una sola entrada y todas las
// filas apuntan al mismo id.
func TestRosterImport_MismoTurnoEnVariasFilas(t *testing.T) {
	roster := &fakeRosterRepo{}
	dicts := &fakeDictRepo{}
	imp := newRosterImporter(roster, dicts)

	result, err := imp.Import(context.Background(), rosterGrid(
		[]string{"2025-06-01", "Mañana", "Ana Ruiz", "600111222", "", "", "", ""},
		[]string{"2025-06-02", "Mañana", "Luis Mora", "600333444", "", "", "", ""},
		[]string{"2025-06-03", "Mañana", "Eva Castro", "600555666", "", "", "", ""},
	))

	require.NoError(t, err)
	require.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 1, dicts.created)
	shiftID := roster.entries[0].ShiftID
	for _, e := range roster.entries[1:] {
		assert.Equal(t, shiftID, e.ShiftID)
	}
}

func TestRosterImport_CamposRequeridos(t *testing.T) {
	roster := &fakeRosterRepo{}
	imp := newRosterImporter(roster, &fakeDictRepo{})

	result, err := imp.Import(context.Background(), rosterGrid(
		[]string{"", "Mañana", "Ana Ruiz", "600111222", "", "", "", ""},       // sin fecha
		[]string{"mañana del lunes", "Mañana", "Luis", "600", "", "", "", ""}, // fecha ilegible (requerida: sí falla)
		[]string{"2025-06-01", "", "Eva Castro", "600555666", "", "", "", ""}, // sin turno
		[]string{"2025-06-01", "Tarde", "", "600777888", "", "", "", ""},      // sin persona
		[]string{"2025-06-01", "Tarde", "Raúl Gil", "", "", "", "", ""},       // sin teléfono
		[]string{"2025-06-01", "Tarde", "Raúl Gil", "600999000", "", "", "", ""},
	))

	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalCount)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 5, result.FailedCount)
	rowsWithError := make([]int, 0, len(result.Errors))
	for _, e := range result.Errors {
		rowsWithError = append(rowsWithError, e.RowNumber)
	}
	assert.Equal(t, []int{3, 4, 5, 6, 7}, rowsWithError)
}

// TestRosterImport_NoChequeaDuplicados: a diferencia del alta directa, la
// importación no rechaza el tuple (fecha, turno, persona) repetido. La
// asimetría es deliberada y se preserva.
func TestRosterImport_NoChequeaDuplicados(t *testing.T) {
	roster := &fakeRosterRepo{}
	imp := newRosterImporter(roster, &fakeDictRepo{})

	fila := []string{"2025-06-01", "Mañana", "Ana Ruiz", "600111222", "", "", "", ""}
	result, err := imp.Import(context.Background(), rosterGrid(fila, fila))

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount, "la importación admite el duplicado exacto")
	assert.Len(t, roster.entries, 2)
}

func TestRosterImport_SinFilasDeDatosEsFatal(t *testing.T) {
	imp := newRosterImporter(&fakeRosterRepo{}, &fakeDictRepo{})

	result, err := imp.Import(context.Background(), rosterGrid())

	require.ErrorIs(t, err, domain.ErrNoDataRows)
	assert.Nil(t, result)
}

func TestRosterImport_FechaSeParseaConVariosLayouts(t *testing.T) {
	roster := &fakeRosterRepo{}
	imp := newRosterImporter(roster, &fakeDictRepo{})

	result, err := imp.Import(context.Background(), rosterGrid(
		[]string{"2025-6-1", "Mañana", "Ana Ruiz", "600111222", "", "", "", ""},
		[]string{"2025/06/01", "Mañana", "Luis Mora", "600333444", "", "", "", ""},
		[]string{"20250601", "Mañana", "Eva Castro", "600555666", "", "", "", ""},
	))

	require.NoError(t, err)
	require.Equal(t, 3, result.SuccessCount)
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, e := range roster.entries {
		assert.True(t, want.Equal(e.Date), "fecha %v debía parsear a 2025-06-01", e.Date)
	}
}
