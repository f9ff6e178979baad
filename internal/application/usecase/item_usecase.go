package usecase

import (
	"time"

	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain"
	"github.com/tu-usuario/wms-api/internal/domain/entity"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para items del catálogo. SKU y barcode son
// únicos; la edición es parcial con campos nombrados opcionales.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un item. Falla con ErrDuplicate si el SKU o el barcode ya existen.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Barcode != nil && *in.Barcode != "" {
		existing, err := uc.repo.GetByBarcode(*in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	var minStock int64
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}
	item := &entity.Item{
		Name:       in.Name,
		SKU:        in.SKU,
		Barcode:    in.Barcode,
		CategoryID: in.CategoryID,
		Unit:       in.Unit,
		MinStock:   minStock,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un item.
func (uc *ItemUseCase) GetByID(id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update edición parcial: solo los campos presentes y no vacíos se aplican.
// SKU y barcode se re-verifican por unicidad solo si cambian.
func (uc *ItemUseCase) Update(id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil && *in.SKU != "" && *in.SKU != item.SKU {
		existing, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		item.SKU = *in.SKU
	}
	if in.Barcode != nil && *in.Barcode != "" {
		if item.Barcode == nil || *in.Barcode != *item.Barcode {
			existing, err := uc.repo.GetByBarcode(*in.Barcode)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		item.Barcode = in.Barcode
	}
	if in.Name != nil && *in.Name != "" {
		item.Name = *in.Name
	}
	if in.CategoryID != nil {
		item.CategoryID = in.CategoryID
	}
	if in.Unit != nil && *in.Unit != "" {
		item.Unit = in.Unit
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.MinStock = *in.MinStock
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina un item.
func (uc *ItemUseCase) Delete(id int64) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista items con búsqueda por nombre o SKU y paginación.
func (uc *ItemUseCase) List(search string, page, limit int) (*dto.ItemListResponse, error) {
	list, total, err := uc.repo.List(search, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		data = append(data, *toItemResponse(i))
	}
	return &dto.ItemListResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		SKU:          i.SKU,
		Barcode:      i.Barcode,
		CategoryID:   i.CategoryID,
		CategoryName: i.CategoryName,
		Unit:         i.Unit,
		MinStock:     i.MinStock,
		CreatedAt:    i.CreatedAt,
	}
}
