// seed puebla la base con datos mínimos de desarrollo: un administrador,
// una categoría, un item de muestra, la bodega principal con existencia
// inicial y un proveedor. Es idempotente: si el dato ya existe, lo omite.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/wms-api/pkg/config"
	"github.com/tu-usuario/wms-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)

	// Administrador
	admin, err := userRepo.GetByEmail("admin@wms.local")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar administrador")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		admin = &entity.User{
			Name:         "Admin",
			Email:        "admin@wms.local",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
		log.Info().Str("email", admin.Email).Msg("administrador creado")
	}

	// Categoría por defecto
	category, err := categoryRepo.GetByName("General")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar categoría")
	}
	if category == nil {
		category = &entity.Category{Name: "General"}
		if err := categoryRepo.Create(category); err != nil {
			log.Fatal().Err(err).Msg("crear categoría")
		}
		log.Info().Str("name", category.Name).Msg("categoría creada")
	}

	// Bodega principal
	warehouse, err := warehouseRepo.GetByName("Bodega Principal")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar bodega")
	}
	if warehouse == nil {
		warehouse = &entity.Warehouse{Name: "Bodega Principal", Location: "Sede central"}
		if err := warehouseRepo.Create(warehouse); err != nil {
			log.Fatal().Err(err).Msg("crear bodega")
		}
		log.Info().Str("name", warehouse.Name).Msg("bodega creada")
	}

	// Item de muestra con existencia inicial
	item, err := itemRepo.GetBySKU("SKU-001")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar item")
	}
	if item == nil {
		unit := "unidad"
		item = &entity.Item{
			Name:       "Item de muestra",
			SKU:        "SKU-001",
			CategoryID: &category.ID,
			Unit:       &unit,
			MinStock:   10,
		}
		if err := itemRepo.Create(item); err != nil {
			log.Fatal().Err(err).Msg("crear item")
		}
		if _, err := stockRepo.ApplyDelta(item.ID, warehouse.ID, 100); err != nil {
			log.Fatal().Err(err).Msg("existencia inicial")
		}
		log.Info().Str("sku", item.SKU).Int64("qty", 100).Msg("item creado con existencia inicial")
	}

	// Proveedor por defecto
	suppliers, _, err := supplierRepo.List("Proveedor General", 1, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar proveedor")
	}
	if len(suppliers) == 0 {
		phone := "3000000000"
		supplier := &entity.Supplier{Name: "Proveedor General", Phone: &phone}
		if err := supplierRepo.Create(supplier); err != nil {
			log.Fatal().Err(err).Msg("crear proveedor")
		}
		log.Info().Str("name", supplier.Name).Msg("proveedor creado")
	}

	log.Info().Msg("seed completado")
}
