package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductListRequest filtros del catálogo.
type ProductListRequest struct {
	PageRequest
	Search string `query:"search" validate:"omitempty,max=100"`
}

// ProductResponse salida de un producto del catálogo (valores por defecto de una línea).
type ProductResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Rate       decimal.Decimal `json:"rate"`
	GSTPercent decimal.Decimal `json:"gst_percent"`
	HSNCode    string          `json:"hsn_code,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
