package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Columnas 1-based de la hoja de cuadrante. Datos a partir de la fila 3.
const (
	rosterColDate = iota + 1
	rosterColShift
	rosterColPerson
	rosterColPhone
	rosterColRank
	rosterColDepartment
	rosterColTitle
	rosterColRemark
)

// RosterImporter pipeline de importación masiva del cuadrante de turnos.
//
// Aplica get-or-create sobre cuatro diccionarios por fila (turno obligatorio;
// rango, departamento y puesto opcionales). A diferencia del alta directa, la
// importación no rechaza el duplicado exacto (fecha, turno, persona): se
// asume que el archivo origen viene depurado.
type RosterImporter struct {
	roster     repository.RosterRepository
	dicts      repository.DictionaryRepository
	openGrid   GridOpener
	log        *logger.Logger
	headerRows int
	actor      string
}

// NewRosterImporter construye el pipeline de cuadrante.
func NewRosterImporter(
	roster repository.RosterRepository,
	dicts repository.DictionaryRepository,
	openGrid GridOpener,
	log *logger.Logger,
	headerRows int,
) *RosterImporter {
	return &RosterImporter{
		roster:     roster,
		dicts:      dicts,
		openGrid:   openGrid,
		log:        log,
		headerRows: headerRows,
		actor:      "import",
	}
}

// ImportFile abre los bytes subidos como grilla y procesa el lote.
func (imp *RosterImporter) ImportFile(ctx context.Context, data []byte, fileName string) (*dto.ImportBatchResult, error) {
	grid, err := imp.openGrid(data)
	if err != nil {
		return nil, err
	}
	log := imp.log.ForBatch(fileName)
	result, err := imp.importGrid(ctx, grid, log)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("total", result.TotalCount).
		Int("ok", result.SuccessCount).
		Int("failed", result.FailedCount).
		Msg("importación de cuadrante finalizada")
	return result, nil
}

// Import procesa una grilla ya parseada.
func (imp *RosterImporter) Import(ctx context.Context, grid Grid) (*dto.ImportBatchResult, error) {
	return imp.importGrid(ctx, grid, imp.log)
}

type rosterReconcilers struct {
	shift      *DictReconciler
	rank       *DictReconciler
	department *DictReconciler
	title      *DictReconciler
}

func (imp *RosterImporter) importGrid(ctx context.Context, grid Grid, log *logger.Logger) (*dto.ImportBatchResult, error) {
	if grid.NumRows() <= imp.headerRows {
		return nil, domain.ErrNoDataRows
	}

	recs := rosterReconcilers{
		shift:      NewDictReconciler(imp.dicts, entity.CategoryShift, imp.actor),
		rank:       NewDictReconciler(imp.dicts, entity.CategoryRank, imp.actor),
		department: NewDictReconciler(imp.dicts, entity.CategoryDepartment, imp.actor),
		title:      NewDictReconciler(imp.dicts, entity.CategoryTitle, imp.actor),
	}
	for _, r := range []*DictReconciler{recs.shift, recs.rank, recs.department, recs.title} {
		if err := r.Preload(ctx); err != nil {
			return nil, err
		}
	}

	result := &dto.ImportBatchResult{}
	for row := imp.headerRows + 1; row <= grid.NumRows(); row++ {
		if err := imp.importRow(ctx, grid, row, recs); err != nil {
			log.Warn().Int("row", row).Err(err).Msg("fila de cuadrante rechazada")
			result.RecordFailure(row, err.Error())
			continue
		}
		result.RecordSuccess()
	}
	return result, nil
}

func (imp *RosterImporter) importRow(ctx context.Context, grid Grid, row int, recs rosterReconcilers) error {
	dateCell := grid.Cell(row, rosterColDate)
	if dateCell == "" {
		return fmt.Errorf("la fecha es requerida")
	}
	date := parseDate(dateCell)
	if date == nil {
		return fmt.Errorf("fecha inválida: %q", dateCell)
	}

	shiftName := grid.Cell(row, rosterColShift)
	if shiftName == "" {
		return fmt.Errorf("el turno es requerido")
	}
	person := grid.Cell(row, rosterColPerson)
	if person == "" {
		return fmt.Errorf("el nombre de la persona es requerido")
	}
	phone := grid.Cell(row, rosterColPhone)
	if phone == "" {
		return fmt.Errorf("el teléfono es requerido")
	}

	shiftID, err := recs.shift.Resolve(ctx, shiftName)
	if err != nil {
		return err
	}
	rankID, err := recs.rank.Resolve(ctx, grid.Cell(row, rosterColRank))
	if err != nil {
		return err
	}
	departmentID, err := recs.department.Resolve(ctx, grid.Cell(row, rosterColDepartment))
	if err != nil {
		return err
	}
	titleID, err := recs.title.Resolve(ctx, grid.Cell(row, rosterColTitle))
	if err != nil {
		return err
	}

	now := time.Now()
	entry := &entity.RosterEntry{
		ID:           uuid.New().String(),
		Date:         *date,
		ShiftID:      *shiftID,
		PersonName:   person,
		Phone:        phone,
		RankID:       rankID,
		DepartmentID: departmentID,
		TitleID:      titleID,
		Remark:       grid.Cell(row, rosterColRemark),
		CreatedBy:    imp.actor,
		CreatedAt:    now,
		UpdatedBy:    imp.actor,
		UpdatedAt:    now,
	}
	if err := imp.roster.Create(ctx, entry); err != nil {
		return fmt.Errorf("persistir entrada de cuadrante de %q: %w", person, err)
	}
	return nil
}
