package repository

import (
	"context"

	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
)

// ProductRepository catálogo de productos y precios (solo lectura para cotizaciones).
type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error)
}
