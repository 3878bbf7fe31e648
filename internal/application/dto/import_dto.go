package dto

// ImportRowError error de una fila concreta de un lote de importación.
// RowNumber es el índice 1-based de la fila en la hoja original.
type ImportRowError struct {
	RowNumber int    `json:"row_number"`
	Message   string `json:"message"`
}

// ImportBatchResult resumen de un lote de importación. Es un reporte
// transitorio: se construye por lote, se entrega al llamador y se descarta.
type ImportBatchResult struct {
	TotalCount   int              `json:"total_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	Errors       []ImportRowError `json:"errors"`
}

// RecordSuccess acumula una fila procesada con éxito.
func (r *ImportBatchResult) RecordSuccess() {
	r.TotalCount++
	r.SuccessCount++
}

// RecordFailure acumula el error de una fila sin abortar el lote.
func (r *ImportBatchResult) RecordFailure(rowNumber int, message string) {
	r.TotalCount++
	r.FailedCount++
	r.Errors = append(r.Errors, ImportRowError{RowNumber: rowNumber, Message: message})
}
