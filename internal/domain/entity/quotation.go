package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation cabecera de una cotización del flujo lead-to-order.
// Los totales se guardan tal como los calculó el dominio para el último conjunto de líneas.
type Quotation struct {
	ID              string
	Number          string // ej. QT-2026-1760600000
	LeadID          string // referencia al lead de origen (opcional)
	CustomerName    string
	CustomerAddress string
	CustomerGSTIN   string
	ContactPerson   string
	ContactPhone    string
	Date            time.Time
	ValidUntil      *time.Time

	TaxMode  string // IGST | CGST_SGST
	IGSTRate decimal.Decimal
	CGSTRate decimal.Decimal
	SGSTRate decimal.Decimal

	Subtotal          decimal.Decimal
	TotalFlatDiscount decimal.Decimal
	TaxableAmount     decimal.Decimal
	IGSTAmount        decimal.Decimal
	CGSTAmount        decimal.Decimal
	SGSTAmount        decimal.Decimal
	SpecialDiscount   decimal.Decimal
	GrandTotal        decimal.Decimal // valor crudo, puede ser negativo

	Terms       string
	Status      string // DRAFT | GENERATED | PERSISTED
	DocumentURL string // URL del PDF subido
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuotationItem línea de la cotización.
type QuotationItem struct {
	ID              string
	QuotationID     string
	Position        int
	ProductCode     string
	Description     string
	Unit            string
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	DiscountPercent decimal.Decimal
	GSTPercent      decimal.Decimal
	Amount          decimal.Decimal
}
