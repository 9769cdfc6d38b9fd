package quotation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	domainquote "github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/repository"
	"github.com/jhoicas/o2d-pipeline-api/pkg/gstin"
	"github.com/jhoicas/o2d-pipeline-api/pkg/inr"
	"github.com/jhoicas/o2d-pipeline-api/pkg/logger"
)

// Config parámetros de despliegue de las cotizaciones.
type Config struct {
	Prefix string // prefijo del número, ej. QT
	Rates  domainquote.Rates
	Issuer Issuer
	Terms  string // términos por defecto si la cotización no trae los suyos
}

// QuotationUseCase casos de uso de cotizaciones: vista previa, alta, edición, PDF, subida y exportación.
type QuotationUseCase struct {
	txRunner      QuotationTxRunner
	quotationRepo repository.QuotationRepository
	productRepo   repository.ProductRepository
	pdf           QuotationPDFGenerator
	xlsx          SpreadsheetExporter
	store         DocumentStore // nil: Save responde ErrStorageDisabled
	cfg           Config
	log           *logger.Logger
	now           func() time.Time
}

// NewQuotationUseCase construye el caso de uso inyectando todas sus dependencias.
func NewQuotationUseCase(
	txRunner QuotationTxRunner,
	quotationRepo repository.QuotationRepository,
	productRepo repository.ProductRepository,
	pdf QuotationPDFGenerator,
	xlsx SpreadsheetExporter,
	store DocumentStore,
	cfg Config,
	log *logger.Logger,
) *QuotationUseCase {
	if cfg.Prefix == "" {
		cfg.Prefix = "QT"
	}
	if cfg.Rates == (domainquote.Rates{}) {
		cfg.Rates = domainquote.DefaultRates()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &QuotationUseCase{
		txRunner:      txRunner,
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		pdf:           pdf,
		xlsx:          xlsx,
		store:         store,
		cfg:           cfg,
		log:           log.Component("quotation"),
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *QuotationUseCase) WithClock(now func() time.Time) *QuotationUseCase {
	uc.now = now
	return uc
}

// Preview calcula los totales de la vista previa. Es puro: no consulta el catálogo
// y toda entrada no numérica ya llegó coercionada a 0.
func (uc *QuotationUseCase) Preview(in dto.PreviewQuotationRequest) dto.PreviewQuotationResponse {
	lines := make([]domainquote.LineItem, 0, len(in.Items))
	items := make([]dto.QuotationItemResponse, 0, len(in.Items))
	for i, it := range in.Items {
		li := toLineItem(it)
		lines = append(lines, li)
		items = append(items, dto.QuotationItemResponse{
			Position:        i + 1,
			ProductCode:     it.ProductCode,
			Description:     it.Description,
			Unit:            it.Unit,
			Quantity:        li.Quantity,
			Rate:            li.Rate,
			DiscountPercent: li.DiscountPercent,
			GSTPercent:      li.GSTPercent,
			Amount:          domainquote.ComputeLineAmount(li),
		})
	}
	totals := domainquote.ComputeTotals(lines, money(in.TotalFlatDiscount), uc.taxMode(in.TaxInput), money(in.SpecialDiscount))
	return dto.PreviewQuotationResponse{
		Items:         items,
		Totals:        domainquote.ToPayload(totals),
		GrandTotalINR: inr.Format(totals.DisplayGrandTotal()),
		AmountInWords: inr.Words(totals.DisplayGrandTotal()),
	}
}

// Create resuelve las líneas contra el catálogo, calcula los totales y guarda la cotización en DRAFT.
func (uc *QuotationUseCase) Create(ctx context.Context, userID string, in dto.SaveQuotationRequest) (*dto.QuotationResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domainquote.ErrLastItem)
	}
	now := uc.now()
	q := &entity.Quotation{
		ID:        uuid.New().String(),
		Number:    uc.nextNumber(now),
		Status:    domainquote.StatusDraft,
		CreatedBy: userID,
		CreatedAt: now,
	}
	items, err := uc.apply(ctx, q, in, now)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		if err := repo.Create(ctx, q); err != nil {
			return err
		}
		for _, it := range items {
			if err := repo.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("quotation: crear: %w", err)
	}
	uc.log.Info().Str("quotation_id", q.ID).Str("number", q.Number).
		Str("grand_total", q.GrandTotal.StringFixed(2)).Msg("cotización creada")
	return toQuotationResponse(q, items), nil
}

// Update reemplaza cabecera y líneas, recalcula todo y devuelve la cotización a DRAFT.
func (uc *QuotationUseCase) Update(ctx context.Context, id string, in dto.SaveQuotationRequest) (*dto.QuotationResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, domainquote.ErrLastItem)
	}
	q, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	status, err := domainquote.Transition(q.Status, domainquote.EventEdit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	now := uc.now()
	items, err := uc.apply(ctx, q, in, now)
	if err != nil {
		return nil, err
	}
	q.Status = status
	q.DocumentURL = ""

	err = uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		if err := repo.Update(ctx, q); err != nil {
			return err
		}
		if err := repo.DeleteItems(ctx, q.ID); err != nil {
			return err
		}
		for _, it := range items {
			if err := repo.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("quotation: actualizar: %w", err)
	}
	return toQuotationResponse(q, items), nil
}

// RemoveItem elimina la línea en position (1-based) y recalcula. Nunca deja la cotización sin líneas.
func (uc *QuotationUseCase) RemoveItem(ctx context.Context, id string, position int) (*dto.QuotationResponse, error) {
	q, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.quotationRepo.GetItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("quotation: obtener líneas: %w", err)
	}
	idx := -1
	for i, it := range items {
		if it.Position == position {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if _, err := domainquote.RemoveItem(lineItemsOf(items), idx); err != nil {
		if errors.Is(err, domainquote.ErrLastItem) {
			return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	status, err := domainquote.Transition(q.Status, domainquote.EventEdit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}

	kept := make([]*entity.QuotationItem, 0, len(items)-1)
	for i, it := range items {
		if i == idx {
			continue
		}
		it.ID = uuid.New().String()
		it.Position = len(kept) + 1
		kept = append(kept, it)
	}
	setTotals(q, uc.recompute(q, kept))
	q.Status = status
	q.DocumentURL = ""
	q.UpdatedAt = uc.now()

	err = uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		if err := repo.Update(ctx, q); err != nil {
			return err
		}
		if err := repo.DeleteItems(ctx, q.ID); err != nil {
			return err
		}
		for _, it := range kept {
			if err := repo.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("quotation: quitar línea: %w", err)
	}
	return toQuotationResponse(q, kept), nil
}

// Get devuelve la cotización con sus líneas.
func (uc *QuotationUseCase) Get(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, items, err := uc.loadWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q, items), nil
}

// List lista cotizaciones, opcionalmente solo las creadas por createdBy.
func (uc *QuotationUseCase) List(ctx context.Context, createdBy string, page dto.PageRequest) (*dto.QuotationListResponse, error) {
	page.DefaultPage()
	list, err := uc.quotationRepo.List(ctx, createdBy, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("quotation: listar: %w", err)
	}
	out := make([]dto.QuotationSummary, 0, len(list))
	for _, q := range list {
		out = append(out, dto.QuotationSummary{
			ID:           q.ID,
			Number:       q.Number,
			CustomerName: q.CustomerName,
			Date:         q.Date,
			GrandTotal:   q.GrandTotal,
			Status:       q.Status,
			DocumentURL:  q.DocumentURL,
		})
	}
	return &dto.QuotationListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GeneratePDF recalcula los totales desde las líneas guardadas, genera el PDF y pasa a GENERATED.
// Si el render falla la cotización no cambia.
func (uc *QuotationUseCase) GeneratePDF(ctx context.Context, id string) ([]byte, string, error) {
	q, items, err := uc.loadWithItems(ctx, id)
	if err != nil {
		return nil, "", err
	}
	status, err := domainquote.Transition(q.Status, domainquote.EventGenerate)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	pdfBytes, err := uc.render(ctx, q, items)
	if err != nil {
		return nil, "", err
	}
	if err := uc.quotationRepo.UpdateStatus(ctx, q.ID, status, q.DocumentURL); err != nil {
		return nil, "", fmt.Errorf("quotation: actualizar estado: %w", err)
	}
	return pdfBytes, fileName(q, "pdf"), nil
}

// Save genera el PDF, lo sube con el número de cotización como nombre y guarda la URL (PERSISTED).
// Requiere un PDF generado previamente.
func (uc *QuotationUseCase) Save(ctx context.Context, id string) (*dto.SavedDocumentResponse, error) {
	if uc.store == nil {
		return nil, ErrStorageDisabled
	}
	q, items, err := uc.loadWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	status, err := domainquote.Transition(q.Status, domainquote.EventSave)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	pdfBytes, err := uc.render(ctx, q, items)
	if err != nil {
		return nil, err
	}
	url, err := uc.store.Upload(ctx, fileName(q, "pdf"), "application/pdf", pdfBytes)
	if err != nil {
		uc.log.Error().Err(err).Str("quotation_id", q.ID).Str("number", q.Number).Msg("fallo al subir el PDF")
		return nil, fmt.Errorf("quotation: subir pdf: %w", err)
	}
	if err := uc.quotationRepo.UpdateStatus(ctx, q.ID, status, url); err != nil {
		return nil, fmt.Errorf("quotation: actualizar estado: %w", err)
	}
	uc.log.Info().Str("quotation_id", q.ID).Str("number", q.Number).Str("url", url).Msg("PDF guardado")
	return &dto.SavedDocumentResponse{ID: q.ID, Number: q.Number, Status: status, DocumentURL: url}, nil
}

// ExportXLSX hoja de cálculo con líneas y totales. No cambia el estado.
func (uc *QuotationUseCase) ExportXLSX(ctx context.Context, id string) ([]byte, string, error) {
	q, items, err := uc.loadWithItems(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.xlsx.ExportQuotation(ctx, uc.document(q, items))
	if err != nil {
		uc.log.Error().Err(err).Str("quotation_id", q.ID).Msg("fallo al exportar XLSX")
		return nil, "", fmt.Errorf("quotation: exportar xlsx: %w", err)
	}
	return data, fileName(q, "xlsx"), nil
}

// ── internos ──────────────────────────────────────────────────────────────────

func (uc *QuotationUseCase) render(ctx context.Context, q *entity.Quotation, items []*entity.QuotationItem) ([]byte, error) {
	pdfBytes, err := uc.pdf.GenerateQuotationPDF(ctx, uc.document(q, items))
	if err != nil {
		uc.log.Error().Err(err).Str("quotation_id", q.ID).Str("number", q.Number).Msg("fallo al generar el PDF")
		return nil, fmt.Errorf("quotation: generar pdf: %w", err)
	}
	return pdfBytes, nil
}

func (uc *QuotationUseCase) document(q *entity.Quotation, items []*entity.QuotationItem) Document {
	return Document{
		Issuer:    uc.cfg.Issuer,
		Quotation: q,
		Items:     items,
		Totals:    uc.recompute(q, items),
	}
}

// recompute totales desde cero con las líneas y parámetros guardados.
func (uc *QuotationUseCase) recompute(q *entity.Quotation, items []*entity.QuotationItem) domainquote.Totals {
	mode := domainquote.ParseTaxMode(q.TaxMode, &q.IGSTRate, &q.CGSTRate, &q.SGSTRate, uc.cfg.Rates)
	return domainquote.ComputeTotals(lineItemsOf(items), q.TotalFlatDiscount, mode, q.SpecialDiscount)
}

func (uc *QuotationUseCase) load(ctx context.Context, id string) (*entity.Quotation, error) {
	q, err := uc.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("quotation: obtener: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

func (uc *QuotationUseCase) loadWithItems(ctx context.Context, id string) (*entity.Quotation, []*entity.QuotationItem, error) {
	q, err := uc.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := uc.quotationRepo.GetItems(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("quotation: obtener líneas: %w", err)
	}
	return q, items, nil
}

// apply copia la entrada sobre q, resuelve las líneas y fija los totales.
func (uc *QuotationUseCase) apply(ctx context.Context, q *entity.Quotation, in dto.SaveQuotationRequest, now time.Time) ([]*entity.QuotationItem, error) {
	items := make([]*entity.QuotationItem, 0, len(in.Items))
	for i, it := range in.Items {
		item, err := uc.resolveItem(ctx, it)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", i+1, err)
		}
		item.ID = uuid.New().String()
		item.QuotationID = q.ID
		item.Position = i + 1
		items = append(items, item)
	}

	mode := uc.taxMode(in.TaxInput)
	q.LeadID = strings.TrimSpace(in.LeadID)
	q.CustomerName = strings.TrimSpace(in.CustomerName)
	q.CustomerAddress = strings.TrimSpace(in.CustomerAddress)
	q.CustomerGSTIN = gstin.Normalize(in.CustomerGSTIN)
	q.ContactPerson = strings.TrimSpace(in.ContactPerson)
	q.ContactPhone = strings.TrimSpace(in.ContactPhone)
	q.Date = now
	if in.Date != nil {
		q.Date = *in.Date
	}
	q.ValidUntil = in.ValidUntil
	q.Terms = in.Terms
	if q.Terms == "" {
		q.Terms = uc.cfg.Terms
	}
	q.TotalFlatDiscount = money(in.TotalFlatDiscount)
	q.SpecialDiscount = money(in.SpecialDiscount)
	q.TaxMode = mode.Kind()
	q.IGSTRate, q.CGSTRate, q.SGSTRate = decimal.Zero, decimal.Zero, decimal.Zero
	switch m := mode.(type) {
	case domainquote.IGST:
		q.IGSTRate = m.Rate
	case domainquote.CGSTSGST:
		q.CGSTRate, q.SGSTRate = m.CGSTRate, m.SGSTRate
	}
	q.UpdatedAt = now

	setTotals(q, domainquote.ComputeTotals(lineItemsOf(items), q.TotalFlatDiscount, mode, q.SpecialDiscount))
	return items, nil
}

// resolveItem completa la línea con el catálogo cuando trae código de producto:
// tarifa 0 toma tarifa y GST del producto; descripción y unidad vacías toman las del producto.
func (uc *QuotationUseCase) resolveItem(ctx context.Context, in dto.QuotationItemInput) (*entity.QuotationItem, error) {
	li := toLineItem(in)
	item := &entity.QuotationItem{
		ProductCode:     strings.TrimSpace(in.ProductCode),
		Description:     strings.TrimSpace(in.Description),
		Unit:            strings.TrimSpace(in.Unit),
		Quantity:        li.Quantity,
		Rate:            li.Rate,
		DiscountPercent: li.DiscountPercent,
		GSTPercent:      li.GSTPercent,
	}
	needsCatalog := item.ProductCode != "" && (item.Rate.IsZero() || item.Description == "" || item.Unit == "")
	if needsCatalog && uc.productRepo != nil {
		p, err := uc.productRepo.GetByCode(ctx, item.ProductCode)
		if err != nil {
			return nil, fmt.Errorf("obtener producto %s: %w", item.ProductCode, err)
		}
		if p == nil && item.Rate.IsZero() {
			return nil, fmt.Errorf("%w: producto %s no existe", domain.ErrInvalidInput, item.ProductCode)
		}
		if p != nil {
			if item.Rate.IsZero() {
				item.Rate = p.Rate
				item.GSTPercent = p.GSTPercent
			}
			if item.Description == "" {
				item.Description = p.Name
			}
			if item.Unit == "" {
				item.Unit = p.Unit
			}
		}
	}
	if item.Description == "" {
		return nil, fmt.Errorf("%w: descripción requerida", domain.ErrInvalidInput)
	}
	li = domainquote.LineItem{
		Quantity:        item.Quantity,
		Rate:            item.Rate,
		DiscountPercent: item.DiscountPercent,
		GSTPercent:      item.GSTPercent,
	}.Quantize()
	item.Quantity, item.Rate = li.Quantity, li.Rate
	item.DiscountPercent, item.GSTPercent = li.DiscountPercent, li.GSTPercent
	item.Amount = domainquote.ComputeLineAmount(li)
	return item, nil
}

func (uc *QuotationUseCase) taxMode(in dto.TaxInput) domainquote.TaxMode {
	return domainquote.QuantizeMode(domainquote.ParseTaxMode(in.TaxMode, amountPtr(in.IGSTRate), amountPtr(in.CGSTRate), amountPtr(in.SGSTRate), uc.cfg.Rates))
}

// money importe de cabecera a la escala de su columna.
func money(a dto.Amount) decimal.Decimal {
	return a.Round(domainquote.MoneyScale)
}

// nextNumber PREFIJO-AÑO-milisegundos; la unicidad la garantiza el índice de la tabla.
func (uc *QuotationUseCase) nextNumber(now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", uc.cfg.Prefix, now.Year(), now.UnixMilli())
}

func amountPtr(a *dto.Amount) *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.Decimal
	return &d
}

// toLineItem línea numérica ya ajustada a la escala con la que se guarda.
func toLineItem(in dto.QuotationItemInput) domainquote.LineItem {
	return domainquote.LineItem{
		Quantity:        in.Quantity.Decimal,
		Rate:            in.Rate.Decimal,
		DiscountPercent: in.DiscountPercent.Decimal,
		GSTPercent:      in.GSTPercent.Decimal,
	}.Quantize()
}

func lineItemsOf(items []*entity.QuotationItem) []domainquote.LineItem {
	out := make([]domainquote.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, domainquote.LineItem{
			Quantity:        it.Quantity,
			Rate:            it.Rate,
			DiscountPercent: it.DiscountPercent,
			GSTPercent:      it.GSTPercent,
		})
	}
	return out
}

func setTotals(q *entity.Quotation, t domainquote.Totals) {
	q.Subtotal = t.Subtotal
	q.TotalFlatDiscount = t.TotalFlatDiscount
	q.TaxableAmount = t.TaxableAmount
	q.IGSTAmount = t.IGSTAmount
	q.CGSTAmount = t.CGSTAmount
	q.SGSTAmount = t.SGSTAmount
	q.SpecialDiscount = t.SpecialDiscount
	q.GrandTotal = t.GrandTotal
}

// TotalsOf reconstruye los totales guardados en la cabecera.
func TotalsOf(q *entity.Quotation) domainquote.Totals {
	return domainquote.Totals{
		Subtotal:          q.Subtotal,
		TotalFlatDiscount: q.TotalFlatDiscount,
		TaxableAmount:     q.TaxableAmount,
		Mode:              q.TaxMode,
		IGSTRate:          q.IGSTRate,
		CGSTRate:          q.CGSTRate,
		SGSTRate:          q.SGSTRate,
		IGSTAmount:        q.IGSTAmount,
		CGSTAmount:        q.CGSTAmount,
		SGSTAmount:        q.SGSTAmount,
		SpecialDiscount:   q.SpecialDiscount,
		GrandTotal:        q.GrandTotal,
	}
}

func fileName(q *entity.Quotation, ext string) string {
	return q.Number + "." + ext
}

func toQuotationResponse(q *entity.Quotation, items []*entity.QuotationItem) *dto.QuotationResponse {
	out := make([]dto.QuotationItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.QuotationItemResponse{
			Position:        it.Position,
			ProductCode:     it.ProductCode,
			Description:     it.Description,
			Unit:            it.Unit,
			Quantity:        it.Quantity,
			Rate:            it.Rate,
			DiscountPercent: it.DiscountPercent,
			GSTPercent:      it.GSTPercent,
			Amount:          it.Amount,
		})
	}
	totals := TotalsOf(q)
	return &dto.QuotationResponse{
		ID:              q.ID,
		Number:          q.Number,
		LeadID:          q.LeadID,
		CustomerName:    q.CustomerName,
		CustomerAddress: q.CustomerAddress,
		CustomerGSTIN:   q.CustomerGSTIN,
		ContactPerson:   q.ContactPerson,
		ContactPhone:    q.ContactPhone,
		Date:            q.Date,
		ValidUntil:      q.ValidUntil,
		Items:           out,
		Totals:          domainquote.ToPayload(totals),
		AmountInWords:   inr.Words(totals.DisplayGrandTotal()),
		Terms:           q.Terms,
		Status:          q.Status,
		DocumentURL:     q.DocumentURL,
		CreatedBy:       q.CreatedBy,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}
