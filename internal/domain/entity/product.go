package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product ítem del catálogo de precios. Sirve para prellenar las líneas de cotización.
type Product struct {
	ID         string
	Code       string // código único del producto
	Name       string
	Unit       string          // NOS, MT, KG...
	Rate       decimal.Decimal // tarifa de venta sin impuesto
	GSTPercent decimal.Decimal // 0 o 18
	HSNCode    string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
