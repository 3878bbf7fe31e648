package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/codegen"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/domain/status"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Columnas 1-based de la hoja de ítems. Datos a partir de la fila 3
// (fila 1 título, fila 2 encabezados).
const (
	itemColCode = iota + 1
	itemColName
	itemColTypeName
	itemColQuantity
	itemColUnit
	itemColLocation
	itemColSpecification
	itemColProductionDate
	itemColShelfLife
	itemColRemark
)

// ItemImporter pipeline de importación masiva de ítems de almacén.
//
// Recorre la hoja en orden de archivo en una sola pasada: parsear fila →
// validar requeridos → resolver tipo de material (get-or-create) → asignar
// código (generar o chequear duplicado) → derivar vencimiento y estado →
// persistir. El error de una fila se registra y el lote continúa; solo los
// errores previos a procesar filas (archivo ilegible, sin filas de datos)
// abortan la operación completa.
type ItemImporter struct {
	items      repository.ItemRepository
	types      repository.MaterialTypeRepository
	policies   repository.ThresholdPolicyRepository
	codes      *codegen.Generator
	openGrid   GridOpener
	log        *logger.Logger
	headerRows int
	actor      string
	now        func() time.Time
}

// NewItemImporter construye el pipeline de ítems.
func NewItemImporter(
	items repository.ItemRepository,
	types repository.MaterialTypeRepository,
	policies repository.ThresholdPolicyRepository,
	codes *codegen.Generator,
	openGrid GridOpener,
	log *logger.Logger,
	headerRows int,
) *ItemImporter {
	return &ItemImporter{
		items:      items,
		types:      types,
		policies:   policies,
		codes:      codes,
		openGrid:   openGrid,
		log:        log,
		headerRows: headerRows,
		actor:      "import",
		now:        time.Now,
	}
}

// ImportFile abre los bytes subidos como grilla y procesa el lote.
func (imp *ItemImporter) ImportFile(ctx context.Context, data []byte, fileName string) (*dto.ImportBatchResult, error) {
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
		Msg("importación de ítems finalizada")
	return result, nil
}

// Import procesa una grilla ya parseada (punto de entrada para tests y otros
// adaptadores de formato).
func (imp *ItemImporter) Import(ctx context.Context, grid Grid) (*dto.ImportBatchResult, error) {
	return imp.importGrid(ctx, grid, imp.log)
}

func (imp *ItemImporter) importGrid(ctx context.Context, grid Grid, log *logger.Logger) (*dto.ImportBatchResult, error) {
	if grid.NumRows() <= imp.headerRows {
		return nil, domain.ErrNoDataRows
	}

	// Snapshot del lote: catálogo de tipos y umbrales habilitados, una sola lectura
	resolver := NewMaterialTypeResolver(imp.types, imp.actor)
	if err := resolver.Preload(ctx); err != nil {
		return nil, err
	}
	thresholds, err := imp.loadThresholds(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.ImportBatchResult{}
	for row := imp.headerRows + 1; row <= grid.NumRows(); row++ {
		if err := imp.importRow(ctx, grid, row, resolver, thresholds); err != nil {
			log.Warn().Int("row", row).Err(err).Msg("fila de ítem rechazada")
			result.RecordFailure(row, err.Error())
			continue
		}
		result.RecordSuccess()
	}
	return result, nil
}

func (imp *ItemImporter) loadThresholds(ctx context.Context) (map[string]int, error) {
	policies, err := imp.policies.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("precargar políticas de umbral: %w", err)
	}
	thresholds := make(map[string]int, len(policies))
	for _, p := range policies {
		if p.Enabled {
			thresholds[p.TypeID] = p.Threshold
		}
	}
	return thresholds, nil
}

func (imp *ItemImporter) importRow(
	ctx context.Context,
	grid Grid,
	row int,
	resolver *MaterialTypeResolver,
	thresholds map[string]int,
) error {
	name := grid.Cell(row, itemColName)
	if name == "" {
		return fmt.Errorf("el nombre es requerido")
	}
	quantityCell := grid.Cell(row, itemColQuantity)
	if quantityCell == "" {
		return fmt.Errorf("la cantidad es requerida")
	}
	quantity, err := decimal.NewFromString(quantityCell)
	if err != nil {
		return fmt.Errorf("cantidad inválida: %q", quantityCell)
	}
	if quantity.IsNegative() {
		return fmt.Errorf("la cantidad no puede ser negativa: %q", quantityCell)
	}

	typeID, err := resolver.Resolve(ctx, grid.Cell(row, itemColTypeName))
	if err != nil {
		return err
	}

	code := grid.Cell(row, itemColCode)
	if code != "" {
		existing, err := imp.items.GetByCode(ctx, code)
		if err != nil {
			return fmt.Errorf("verificar código %q: %w", code, err)
		}
		if existing != nil {
			return fmt.Errorf("el código %q ya existe", code)
		}
	} else {
		code, err = imp.generateCode(ctx)
		if err != nil {
			return err
		}
	}

	now := imp.now()
	item := &entity.InventoryItem{
		ID:              uuid.New().String(),
		Code:            code,
		Name:            name,
		TypeID:          typeID,
		Quantity:        quantity,
		Unit:            grid.Cell(row, itemColUnit),
		Location:        grid.Cell(row, itemColLocation),
		Specification:   grid.Cell(row, itemColSpecification),
		ProductionDate:  parseDate(grid.Cell(row, itemColProductionDate)),
		ShelfLifeMonths: parseOptionalInt(grid.Cell(row, itemColShelfLife)),
		Remark:          grid.Cell(row, itemColRemark),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	item.ComputeExpiry()
	item.Status = status.ComputeAt(now, item.Quantity, item.ExpiryDate, thresholdFor(thresholds, typeID))

	if err := imp.items.Create(ctx, item); err != nil {
		return fmt.Errorf("persistir ítem %q: %w", name, err)
	}
	return nil
}

// generateCode pide códigos al generador reverificando cada candidato contra
// el store; un error del store durante la verificación falla la fila.
func (imp *ItemImporter) generateCode(ctx context.Context) (string, error) {
	var checkErr error
	code := imp.codes.Generate(func(candidate string) bool {
		if checkErr != nil {
			return false // cortar el reintento, el error se propaga abajo
		}
		existing, err := imp.items.GetByCode(ctx, candidate)
		if err != nil {
			checkErr = err
			return false
		}
		return existing != nil
	})
	if checkErr != nil {
		return "", fmt.Errorf("generar código: %w", checkErr)
	}
	return code, nil
}

func thresholdFor(thresholds map[string]int, typeID string) *int {
	if t, ok := thresholds[typeID]; ok {
		return &t
	}
	return nil
}
