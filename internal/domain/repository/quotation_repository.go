package repository

import (
	"context"

	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para Quotation y sus líneas.
type QuotationRepository interface {
	Create(ctx context.Context, q *entity.Quotation) error
	// Update reemplaza cabecera y totales (no toca las líneas).
	Update(ctx context.Context, q *entity.Quotation) error
	// UpdateStatus cambia estado y URL del documento.
	UpdateStatus(ctx context.Context, id, status, documentURL string) error
	GetByID(ctx context.Context, id string) (*entity.Quotation, error)
	List(ctx context.Context, createdBy string, limit, offset int) ([]*entity.Quotation, error)

	CreateItem(ctx context.Context, item *entity.QuotationItem) error
	DeleteItems(ctx context.Context, quotationID string) error
	GetItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error)
}
