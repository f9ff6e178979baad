package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/application/usecase"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// memItemRepo doble en memoria del puerto ItemRepository.
type memItemRepo struct {
	items  map[int64]*entity.Item
	nextID int64
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[int64]*entity.Item{}}
}

func (r *memItemRepo) Create(item *entity.Item) error {
	r.nextID++
	item.ID = r.nextID
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(id int64) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *memItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) GetByBarcode(barcode string) (*entity.Item, error) {
	for _, item := range r.items {
		if item.Barcode != nil && *item.Barcode == barcode {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) List(search string, limit, offset int) ([]*entity.Item, int, error) {
	var out []*entity.Item
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, len(out), nil
}

var _ repository.ItemRepository = (*memItemRepo)(nil)

func strPtr(s string) *string { return &s }
func i64Ptr(n int64) *int64   { return &n }

func TestItemCreate_AsignaDefaults(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	resp, err := uc.Create(dto.CreateItemRequest{Name: "Tornillo", SKU: "SKU-001"})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, int64(0), resp.MinStock, "minStock por defecto es 0")
	assert.Nil(t, resp.Barcode)
	assert.Nil(t, resp.CategoryID)
}

func TestItemCreate_SKUDuplicado_Conflicto(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{Name: "Tornillo", SKU: "SKU-001"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateItemRequest{Name: "Otro", SKU: "SKU-001"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemCreate_BarcodeDuplicado_Conflicto(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{Name: "Tornillo", SKU: "SKU-001", Barcode: strPtr("12345")})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateItemRequest{Name: "Otro", SKU: "SKU-002", Barcode: strPtr("12345")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemCreate_MinStockNegativo_Invalido(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{Name: "Tornillo", SKU: "SKU-001", MinStock: i64Ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUpdate_Parcial_SoloCamposPresentes(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	created, err := uc.Create(dto.CreateItemRequest{
		Name: "Tornillo", SKU: "SKU-001", Unit: strPtr("caja"), MinStock: i64Ptr(5),
	})
	require.NoError(t, err)

	// Solo cambia el nombre; el resto queda intacto
	updated, err := uc.Update(created.ID, dto.UpdateItemRequest{Name: strPtr("Tornillo M8")})
	require.NoError(t, err)

	assert.Equal(t, "Tornillo M8", updated.Name)
	assert.Equal(t, "SKU-001", updated.SKU)
	require.NotNil(t, updated.Unit)
	assert.Equal(t, "caja", *updated.Unit)
	assert.Equal(t, int64(5), updated.MinStock)
}

func TestItemUpdate_CadenaVaciaNoAplica(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	created, err := uc.Create(dto.CreateItemRequest{Name: "Tornillo", SKU: "SKU-001"})
	require.NoError(t, err)

	// Un string vacío presente en el body se ignora, no borra el campo
	updated, err := uc.Update(created.ID, dto.UpdateItemRequest{Name: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "Tornillo", updated.Name)
}

func TestItemUpdate_SKUDeOtroItem_Conflicto(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	_, err := uc.Create(dto.CreateItemRequest{Name: "A", SKU: "SKU-001"})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateItemRequest{Name: "B", SKU: "SKU-002"})
	require.NoError(t, err)

	_, err = uc.Update(second.ID, dto.UpdateItemRequest{SKU: strPtr("SKU-001")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemUpdate_MismoSKUPropio_NoEsConflicto(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	created, err := uc.Create(dto.CreateItemRequest{Name: "A", SKU: "SKU-001"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateItemRequest{SKU: strPtr("SKU-001"), Name: strPtr("A2")})
	assert.NoError(t, err, "conservar el propio SKU no debe marcar duplicado")
}

func TestItemDelete_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	err := uc.Delete(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemGet_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewItemUseCase(newMemItemRepo())

	_, err := uc.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
