package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

const quotationColumns = `id, number, lead_id, customer_name, customer_address, customer_gstin, contact_person, contact_phone,
	quotation_date, valid_until, tax_mode, igst_rate, cgst_rate, sgst_rate,
	subtotal, total_flat_discount, taxable_amount, igst_amount, cgst_amount, sgst_amount, special_discount, grand_total,
	terms, status, document_url, created_by, created_at, updated_at`

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL (usable con pool o tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create inserta la cabecera. Un número repetido devuelve ErrDuplicate.
func (r *QuotationRepo) Create(ctx context.Context, qt *entity.Quotation) error {
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`
	_, err := r.q.Exec(ctx, query,
		qt.ID, qt.Number, qt.LeadID, qt.CustomerName, qt.CustomerAddress, qt.CustomerGSTIN, qt.ContactPerson, qt.ContactPhone,
		qt.Date, qt.ValidUntil, qt.TaxMode, qt.IGSTRate, qt.CGSTRate, qt.SGSTRate,
		qt.Subtotal, qt.TotalFlatDiscount, qt.TaxableAmount, qt.IGSTAmount, qt.CGSTAmount, qt.SGSTAmount, qt.SpecialDiscount, qt.GrandTotal,
		qt.Terms, qt.Status, qt.DocumentURL, qt.CreatedBy, qt.CreatedAt, qt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// Update reemplaza cabecera, parámetros de impuesto, totales y estado.
func (r *QuotationRepo) Update(ctx context.Context, qt *entity.Quotation) error {
	query := `
		UPDATE quotations SET
			lead_id = $2, customer_name = $3, customer_address = $4, customer_gstin = $5,
			contact_person = $6, contact_phone = $7, quotation_date = $8, valid_until = $9,
			tax_mode = $10, igst_rate = $11, cgst_rate = $12, sgst_rate = $13,
			subtotal = $14, total_flat_discount = $15, taxable_amount = $16,
			igst_amount = $17, cgst_amount = $18, sgst_amount = $19, special_discount = $20, grand_total = $21,
			terms = $22, status = $23, document_url = $24, updated_at = $25
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		qt.ID, qt.LeadID, qt.CustomerName, qt.CustomerAddress, qt.CustomerGSTIN,
		qt.ContactPerson, qt.ContactPhone, qt.Date, qt.ValidUntil,
		qt.TaxMode, qt.IGSTRate, qt.CGSTRate, qt.SGSTRate,
		qt.Subtotal, qt.TotalFlatDiscount, qt.TaxableAmount,
		qt.IGSTAmount, qt.CGSTAmount, qt.SGSTAmount, qt.SpecialDiscount, qt.GrandTotal,
		qt.Terms, qt.Status, qt.DocumentURL, qt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia estado y URL del documento.
func (r *QuotationRepo) UpdateStatus(ctx context.Context, id, status, documentURL string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE quotations SET status = $2, document_url = $3, updated_at = now() WHERE id = $1`,
		id, status, documentURL)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene la cabecera por ID.
func (r *QuotationRepo) GetByID(ctx context.Context, id string) (*entity.Quotation, error) {
	var qt entity.Quotation
	err := r.q.QueryRow(ctx, `SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id).Scan(quotationDest(&qt)...)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &qt, nil
}

// List cotizaciones más recientes primero; createdBy vacío lista todas.
func (r *QuotationRepo) List(ctx context.Context, createdBy string, limit, offset int) ([]*entity.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations
		WHERE ($1 = '' OR created_by = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, createdBy, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var qt entity.Quotation
		if err := rows.Scan(quotationDest(&qt)...); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &qt)
	}
	return list, rows.Err()
}

// CreateItem inserta una línea.
func (r *QuotationRepo) CreateItem(ctx context.Context, it *entity.QuotationItem) error {
	query := `
		INSERT INTO quotation_items (id, quotation_id, position, product_code, description, unit,
			quantity, rate, discount_percent, gst_percent, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.QuotationID, it.Position, it.ProductCode, it.Description, it.Unit,
		it.Quantity, it.Rate, it.DiscountPercent, it.GSTPercent, it.Amount,
	)
	if err != nil {
		return fmt.Errorf("insert quotation item: %w", err)
	}
	return nil
}

// DeleteItems borra todas las líneas de la cotización.
func (r *QuotationRepo) DeleteItems(ctx context.Context, quotationID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1`, quotationID); err != nil {
		return fmt.Errorf("delete quotation items: %w", err)
	}
	return nil
}

// GetItems líneas ordenadas por posición.
func (r *QuotationRepo) GetItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	query := `
		SELECT id, quotation_id, position, product_code, description, unit,
			quantity, rate, discount_percent, gst_percent, amount
		FROM quotation_items WHERE quotation_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuotationItem
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.Position, &it.ProductCode, &it.Description, &it.Unit,
			&it.Quantity, &it.Rate, &it.DiscountPercent, &it.GSTPercent, &it.Amount); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// quotationDest destinos de Scan en el orden de quotationColumns.
func quotationDest(qt *entity.Quotation) []any {
	return []any{
		&qt.ID, &qt.Number, &qt.LeadID, &qt.CustomerName, &qt.CustomerAddress, &qt.CustomerGSTIN, &qt.ContactPerson, &qt.ContactPhone,
		&qt.Date, &qt.ValidUntil, &qt.TaxMode, &qt.IGSTRate, &qt.CGSTRate, &qt.SGSTRate,
		&qt.Subtotal, &qt.TotalFlatDiscount, &qt.TaxableAmount, &qt.IGSTAmount, &qt.CGSTAmount, &qt.SGSTAmount, &qt.SpecialDiscount, &qt.GrandTotal,
		&qt.Terms, &qt.Status, &qt.DocumentURL, &qt.CreatedBy, &qt.CreatedAt, &qt.UpdatedAt,
	}
}
