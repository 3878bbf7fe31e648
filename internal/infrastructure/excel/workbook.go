package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// OpenGrid parsea los bytes de un .xlsx subido y devuelve la primera hoja
// como grilla. Cualquier fallo aquí es fatal para el lote: todavía no se
// procesó ninguna fila.
func OpenGrid(data []byte) (importer.Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmptyWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmptyWorkbook, err)
	}
	return &importer.SliceGrid{Rows: rows}, nil
}
