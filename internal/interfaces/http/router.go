package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/audit"
	"github.com/jhoicas/Almacen-api/internal/application/catalog"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterTransaction *inventory.RegisterTransactionUseCase
	LedgerQuery         *inventory.LedgerQueryUseCase
	ProductUC           *catalog.ProductUseCase
	SKUUC               *catalog.SKUUseCase
	DashboardUC         *reports.DashboardUseCase
	BreakdownUC         *reports.BreakdownUseCase
	ReferenceUC         *usecase.ReferenceUseCase
	SettingsUC          *usecase.SettingsUseCase
	UserUC              *usecase.UserUseCase
	Auditor             *audit.Auditor
	Hub                 *ws.Hub
	JWTSecret           string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps, authHandler *AuthHandler) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Websocket de eventos de snapshot (el token viaja en query o header según el cliente)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(deps.Hub.Handler()))

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.ProductUC, deps.SKUUC)
	products := protected.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)
	products.Put("/:id", catalogHandler.UpdateProduct)
	products.Delete("/:id", catalogHandler.DeleteProduct)

	skus := protected.Group("/skus")
	skus.Post("/", catalogHandler.CreateSKU)
	skus.Get("/", catalogHandler.ListSKUs)
	skus.Get("/:id", catalogHandler.GetSKU)
	skus.Put("/:id", catalogHandler.UpdateSKU)
	skus.Delete("/:id", catalogHandler.DeleteSKU)

	// Motor de inventario y libro
	inventoryHandler := NewInventoryHandler(deps.RegisterTransaction, deps.LedgerQuery)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/transactions", inventoryHandler.RegisterTransaction)
	invGroup.Get("/transactions", inventoryHandler.ListTransactions)
	invGroup.Get("/transactions/:id", inventoryHandler.GetTransaction)

	// Reportes
	reportsHandler := NewReportsHandler(deps.DashboardUC, deps.BreakdownUC, deps.Auditor)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/dashboard", reportsHandler.GetDashboardStats)
	reportsGroup.Get("/low-stock", reportsHandler.GetLowStockAlerts)
	reportsGroup.Get("/recent-transactions", reportsHandler.GetRecentTransactions)
	reportsGroup.Get("/category-breakdown", reportsHandler.GetCategoryBreakdown)
	reportsGroup.Get("/audit-log", reportsHandler.GetAuditLog)

	// Datos de referencia
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	categories := protected.Group("/categories")
	categories.Post("/", referenceHandler.CreateCategory)
	categories.Get("/", referenceHandler.ListCategories)
	categories.Put("/:id", referenceHandler.UpdateCategory)

	colors := protected.Group("/colors")
	colors.Post("/", referenceHandler.CreateColor)
	colors.Get("/", referenceHandler.ListColors)
	colors.Put("/:id", referenceHandler.UpdateColor)

	sizes := protected.Group("/sizes")
	sizes.Post("/", referenceHandler.CreateSize)
	sizes.Get("/", referenceHandler.ListSizes)
	sizes.Put("/:id", referenceHandler.UpdateSize)

	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", referenceHandler.CreateSupplier)
	suppliers.Get("/", referenceHandler.ListSuppliers)
	suppliers.Put("/:id", referenceHandler.UpdateSupplier)

	platforms := protected.Group("/platforms")
	platforms.Post("/", referenceHandler.CreatePlatform)
	platforms.Get("/", referenceHandler.ListPlatforms)
	platforms.Put("/:id", referenceHandler.UpdatePlatform)

	reasons := protected.Group("/reason-categories")
	reasons.Post("/", referenceHandler.CreateReason)
	reasons.Get("/", referenceHandler.ListReasons)
	reasons.Put("/:id", referenceHandler.UpdateReason)

	// Configuración y usuarios
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.UserUC)
	protected.Get("/settings", settingsHandler.GetSettings)
	protected.Put("/settings", settingsHandler.UpdateSettings)

	users := protected.Group("/users")
	users.Post("/", settingsHandler.CreateUser)
	users.Get("/", settingsHandler.ListUsers)
	users.Put("/:id", settingsHandler.UpdateUser)
	users.Post("/:id/approve", settingsHandler.ApproveUser)
	users.Post("/:id/reject", settingsHandler.RejectUser)
}
