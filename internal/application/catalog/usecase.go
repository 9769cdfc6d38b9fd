package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/repository"
)

// CatalogUseCase consulta del catálogo de productos para prellenar líneas de cotización.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo}
}

// List productos activos filtrados por código o nombre.
func (uc *CatalogUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	list, err := uc.productRepo.List(ctx, strings.TrimSpace(in.Search), in.Limit, in.Offset)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// GetByCode producto por código. Los productos inactivos no se ofrecen.
func (uc *CatalogUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("catalog: obtener: %w", err)
	}
	if p == nil || !p.Active {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		Unit:       p.Unit,
		Rate:       p.Rate,
		GSTPercent: p.GSTPercent,
		HSNCode:    p.HSNCode,
		UpdatedAt:  p.UpdatedAt,
	}
}
