package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
)

// RouterDeps dependencias de las rutas HTTP.
type RouterDeps struct {
	JWTSecret string

	Auth       *AuthHandler
	Users      *UserHandler
	Categories *CategoryHandler
	Suppliers  *SupplierHandler
	Warehouses *WarehouseHandler
	Items      *ItemHandler
	Stocks     *StockHandler
	StockIns   *StockInHandler
	StockOuts  *StockOutHandler
}

// Router registra todas las rutas bajo el prefijo /api. El login y el
// registro son públicos; el resto exige token, y la gestión de usuarios
// además rol ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Públicas
	api.Post("/auth/login", deps.Auth.Login)
	api.Post("/users/register", deps.Users.Register)

	// Protegidas
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", deps.Users.List)
	users.Get("/:id", deps.Users.Get)
	users.Put("/:id", deps.Users.Update)
	users.Delete("/:id", deps.Users.Delete)

	categories := protected.Group("/categories")
	categories.Post("/", deps.Categories.Create)
	categories.Get("/", deps.Categories.List)
	categories.Get("/:id", deps.Categories.Get)
	categories.Put("/:id", deps.Categories.Update)
	categories.Delete("/:id", deps.Categories.Delete)

	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", deps.Suppliers.Create)
	suppliers.Get("/", deps.Suppliers.List)
	suppliers.Get("/:id", deps.Suppliers.Get)
	suppliers.Put("/:id", deps.Suppliers.Update)
	suppliers.Delete("/:id", deps.Suppliers.Delete)

	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", deps.Warehouses.Create)
	warehouses.Get("/", deps.Warehouses.List)
	warehouses.Get("/:id", deps.Warehouses.Get)
	warehouses.Put("/:id", deps.Warehouses.Update)
	warehouses.Delete("/:id", deps.Warehouses.Delete)

	items := protected.Group("/items")
	items.Post("/", deps.Items.Create)
	items.Get("/", deps.Items.List)
	items.Get("/:id", deps.Items.Get)
	items.Put("/:id", deps.Items.Update)
	items.Delete("/:id", deps.Items.Delete)

	stocks := protected.Group("/stocks")
	stocks.Get("/", deps.Stocks.List)
	stocks.Get("/:id", deps.Stocks.Level)

	stockIns := protected.Group("/stock-ins")
	stockIns.Post("/", deps.StockIns.Create)
	stockIns.Get("/", deps.StockIns.List)
	stockIns.Get("/:id", deps.StockIns.Get)
	stockIns.Put("/:id", deps.StockIns.Update)
	stockIns.Delete("/:id", deps.StockIns.Delete)

	stockOuts := protected.Group("/stock-outs")
	stockOuts.Post("/", deps.StockOuts.Create)
	stockOuts.Get("/", deps.StockOuts.List)
	stockOuts.Get("/:id", deps.StockOuts.Get)
	stockOuts.Put("/:id", deps.StockOuts.Update)
	stockOuts.Delete("/:id", deps.StockOuts.Delete)
}
