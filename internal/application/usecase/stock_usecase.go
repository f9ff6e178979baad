package usecase

import (
	"github.com/tu-usuario/wms-api/internal/application/dto"
	"github.com/tu-usuario/wms-api/internal/domain/repository"
)

// StockUseCase consulta de existencias actuales (solo lectura; las mutaciones
// pasan por el motor del libro de existencias).
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// List devuelve todas las existencias con nombres de item y bodega, ordenadas
// por nombre de item.
func (uc *StockUseCase) List() (*dto.StockListResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	data := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		data = append(data, dto.StockResponse{
			ItemID:        s.ItemID,
			ItemName:      s.ItemName,
			WarehouseID:   s.WarehouseID,
			WarehouseName: s.WarehouseName,
			Quantity:      s.Quantity,
			UpdatedAt:     s.UpdatedAt,
		})
	}
	return &dto.StockListResponse{Data: data}, nil
}
