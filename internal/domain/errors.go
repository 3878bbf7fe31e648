package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicateCode   = errors.New("el código ya existe")
	ErrDuplicateRoster = errors.New("ya existe una entrada de cuadrante para esa fecha, turno y persona")
	ErrDuplicateEntry  = errors.New("ya existe una entrada con ese nombre en la categoría")
	ErrPolicyExists    = errors.New("ya existe una política de umbral habilitada para ese tipo de material")
	ErrUnknownCategory = errors.New("categoría de diccionario desconocida")
	ErrEmptyWorkbook   = errors.New("el archivo no contiene ninguna hoja legible")
	ErrNoDataRows      = errors.New("la hoja no contiene filas de datos debajo de la cabecera")
)
