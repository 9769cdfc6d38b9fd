package quotation

import (
	"context"
	"errors"

	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	domainquote "github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/repository"
)

// ErrStorageDisabled no hay almacenamiento de documentos configurado.
var ErrStorageDisabled = errors.New("almacenamiento de documentos no configurado")

// QuotationTxRunner ejecuta fn dentro de una transacción con el repositorio de cotizaciones atado a ella.
type QuotationTxRunner interface {
	RunQuotation(ctx context.Context, fn func(quotationRepo repository.QuotationRepository) error) error
}

// QuotationPDFGenerator genera el PDF de una cotización.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, doc Document) ([]byte, error)
}

// SpreadsheetExporter genera la hoja de cálculo (XLSX) de una cotización.
type SpreadsheetExporter interface {
	ExportQuotation(ctx context.Context, doc Document) ([]byte, error)
}

// DocumentStore sube un documento y devuelve su URL pública.
// fileName identifica el documento en el almacenamiento (número de cotización).
type DocumentStore interface {
	Upload(ctx context.Context, fileName, mimeType string, content []byte) (string, error)
}

// Issuer datos de la empresa emisora impresos en el documento.
type Issuer struct {
	Name    string
	GSTIN   string
	Address string
	Phone   string
	Email   string
}

// Document todo lo que necesita un renderizador: cabecera, líneas y totales recalculados.
type Document struct {
	Issuer    Issuer
	Quotation *entity.Quotation
	Items     []*entity.QuotationItem
	Totals    domainquote.Totals
}
