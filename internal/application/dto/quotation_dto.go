package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
)

// Amount decimal tolerante para entradas de formulario: acepta número, cadena
// (con separadores de miles), vacío o null. Lo que no es numérico vale 0.
type Amount struct {
	decimal.Decimal
}

// NewAmount envuelve un decimal.
func NewAmount(d decimal.Decimal) Amount { return Amount{Decimal: d} }

// UnmarshalJSON aplica la coerción de quotation.CoerceAny.
func (a *Amount) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	a.Decimal = quotation.CoerceAny(v)
	return nil
}

// QuotationItemInput línea tal como llega del formulario.
// Con rate 0 y product_code informado se toman los valores del catálogo.
type QuotationItemInput struct {
	ProductCode     string `json:"product_code" validate:"omitempty,max=50"`
	Description     string `json:"description" validate:"omitempty,max=500"`
	Unit            string `json:"unit" validate:"omitempty,max=20"`
	Quantity        Amount `json:"quantity" swaggertype:"string" validate:"gt=0,lte=99999999999"`
	Rate            Amount `json:"rate" swaggertype:"string" validate:"gte=0,lte=999999999999"`
	DiscountPercent Amount `json:"discount_percent" swaggertype:"string" validate:"gte=0,lte=100"`
	GSTPercent      Amount `json:"gst_percent" swaggertype:"string" validate:"gte=0,lte=100"`
}

// TaxInput modo de impuesto y tarifas opcionales (nulas = tarifas configuradas).
type TaxInput struct {
	TaxMode  string  `json:"tax_mode" validate:"omitempty,oneof=IGST CGST_SGST"`
	IGSTRate *Amount `json:"igst_rate,omitempty" swaggertype:"string" validate:"omitempty,gte=0,lte=100"`
	CGSTRate *Amount `json:"cgst_rate,omitempty" swaggertype:"string" validate:"omitempty,gte=0,lte=100"`
	SGSTRate *Amount `json:"sgst_rate,omitempty" swaggertype:"string" validate:"omitempty,gte=0,lte=100"`
}

// PreviewQuotationRequest entrada de la vista previa. No se valida: todo se coerciona.
type PreviewQuotationRequest struct {
	TaxInput
	Items             []QuotationItemInput `json:"items"`
	TotalFlatDiscount Amount               `json:"total_flat_discount" swaggertype:"string"`
	SpecialDiscount   Amount               `json:"special_discount" swaggertype:"string"`
}

// SaveQuotationRequest entrada de creación y de edición completa.
type SaveQuotationRequest struct {
	TaxInput
	LeadID            string               `json:"lead_id" validate:"omitempty,max=100"`
	CustomerName      string               `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerAddress   string               `json:"customer_address" validate:"omitempty,max=500"`
	CustomerGSTIN     string               `json:"customer_gstin" validate:"omitempty,gstin"`
	ContactPerson     string               `json:"contact_person" validate:"omitempty,max=200"`
	ContactPhone      string               `json:"contact_phone" validate:"omitempty,max=30"`
	Date              *time.Time           `json:"date"`
	ValidUntil        *time.Time           `json:"valid_until"`
	Items             []QuotationItemInput `json:"items" validate:"required,min=1,dive"`
	TotalFlatDiscount Amount               `json:"total_flat_discount" swaggertype:"string" validate:"gte=0,lte=999999999999"`
	SpecialDiscount   Amount               `json:"special_discount" swaggertype:"string" validate:"gte=0,lte=999999999999"`
	Terms             string               `json:"terms" validate:"omitempty,max=4000"`
}

// QuotationItemResponse línea persistida.
type QuotationItemResponse struct {
	Position        int             `json:"position"`
	ProductCode     string          `json:"product_code,omitempty"`
	Description     string          `json:"description"`
	Unit            string          `json:"unit,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	GSTPercent      decimal.Decimal `json:"gst_percent"`
	Amount          decimal.Decimal `json:"amount"`
}

// PreviewQuotationResponse totales y su versión en texto para la UI.
type PreviewQuotationResponse struct {
	Items         []QuotationItemResponse `json:"items"`
	Totals        quotation.Payload       `json:"totals"`
	GrandTotalINR string                  `json:"grand_total_inr"`
	AmountInWords string                  `json:"amount_in_words"`
}

// QuotationResponse cotización completa.
type QuotationResponse struct {
	ID              string                  `json:"id"`
	Number          string                  `json:"number"`
	LeadID          string                  `json:"lead_id,omitempty"`
	CustomerName    string                  `json:"customer_name"`
	CustomerAddress string                  `json:"customer_address,omitempty"`
	CustomerGSTIN   string                  `json:"customer_gstin,omitempty"`
	ContactPerson   string                  `json:"contact_person,omitempty"`
	ContactPhone    string                  `json:"contact_phone,omitempty"`
	Date            time.Time               `json:"date"`
	ValidUntil      *time.Time              `json:"valid_until,omitempty"`
	Items           []QuotationItemResponse `json:"items"`
	Totals          quotation.Payload       `json:"totals"`
	AmountInWords   string                  `json:"amount_in_words"`
	Terms           string                  `json:"terms,omitempty"`
	Status          string                  `json:"status"`
	DocumentURL     string                  `json:"document_url,omitempty"`
	CreatedBy       string                  `json:"created_by"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// QuotationSummary fila del listado.
type QuotationSummary struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	Status       string          `json:"status"`
	DocumentURL  string          `json:"document_url,omitempty"`
}

// QuotationListResponse lista paginada de cotizaciones.
type QuotationListResponse struct {
	Items []QuotationSummary `json:"items"`
	Page  PageResponse       `json:"page"`
}

// SavedDocumentResponse resultado de subir el PDF.
type SavedDocumentResponse struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Status      string `json:"status"`
	DocumentURL string `json:"document_url"`
}
