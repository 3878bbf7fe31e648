package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/importer"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC         *usecase.ItemUseCase
	MaterialTypeUC *usecase.MaterialTypeUseCase
	ThresholdUC    *usecase.ThresholdPolicyUseCase
	DictionaryUC   *usecase.DictionaryUseCase
	RosterUC       *usecase.RosterUseCase
	ItemImporter   *importer.ItemImporter
	RosterImporter *importer.RosterImporter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ítems de almacén
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	importHandler := NewImportHandler(deps.ItemImporter, deps.RosterImporter)
	items.Post("/import", importHandler.ImportItems)
	items.Get("/import/template", importHandler.ItemTemplate)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Cuadrante de turnos
	roster := api.Group("/roster")
	rosterHandler := NewRosterHandler(deps.RosterUC)
	roster.Post("/import", importHandler.ImportRoster)
	roster.Get("/import/template", importHandler.RosterTemplate)
	roster.Post("/", rosterHandler.Create)
	roster.Get("/", rosterHandler.List)
	roster.Delete("/:id", rosterHandler.Delete)

	// Tipos de material
	types := api.Group("/material-types")
	materialTypeHandler := NewMaterialTypeHandler(deps.MaterialTypeUC)
	types.Post("/", materialTypeHandler.Create)
	types.Get("/", materialTypeHandler.List)
	types.Put("/:id", materialTypeHandler.Update)

	// Políticas de umbral
	policies := api.Group("/threshold-policies")
	thresholdHandler := NewThresholdHandler(deps.ThresholdUC)
	policies.Post("/", thresholdHandler.Create)
	policies.Get("/", thresholdHandler.List)
	policies.Put("/:id", thresholdHandler.Update)
	policies.Delete("/:id", thresholdHandler.Delete)

	// Diccionarios de referencia
	dicts := api.Group("/dictionaries")
	dictionaryHandler := NewDictionaryHandler(deps.DictionaryUC)
	dicts.Get("/:category", dictionaryHandler.List)
	dicts.Post("/:category", dictionaryHandler.Create)
}
