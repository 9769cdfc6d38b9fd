package quotation_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquote "github.com/jhoicas/o2d-pipeline-api/internal/application/quotation"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	domainquote "github.com/jhoicas/o2d-pipeline-api/internal/domain/quotation"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/repository"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type memQuotationRepo struct {
	quotes map[string]*entity.Quotation
	items  map[string][]*entity.QuotationItem
	// numeric redondea al guardar como las columnas NUMERIC de Postgres.
	numeric bool
}

func newMemQuotationRepo() *memQuotationRepo {
	return &memQuotationRepo{quotes: map[string]*entity.Quotation{}, items: map[string][]*entity.QuotationItem{}}
}

func (r *memQuotationRepo) Create(_ context.Context, q *entity.Quotation) error {
	cp := r.column(*q)
	r.quotes[q.ID] = &cp
	return nil
}

func (r *memQuotationRepo) Update(_ context.Context, q *entity.Quotation) error {
	if _, ok := r.quotes[q.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := r.column(*q)
	r.quotes[q.ID] = &cp
	return nil
}

func (r *memQuotationRepo) column(q entity.Quotation) entity.Quotation {
	if !r.numeric {
		return q
	}
	for _, v := range []*decimal.Decimal{
		&q.IGSTRate, &q.CGSTRate, &q.SGSTRate, &q.Subtotal, &q.TotalFlatDiscount, &q.TaxableAmount,
		&q.IGSTAmount, &q.CGSTAmount, &q.SGSTAmount, &q.SpecialDiscount, &q.GrandTotal,
	} {
		*v = v.Round(2)
	}
	return q
}

func (r *memQuotationRepo) UpdateStatus(_ context.Context, id, status, documentURL string) error {
	q, ok := r.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = status
	q.DocumentURL = documentURL
	return nil
}

func (r *memQuotationRepo) GetByID(_ context.Context, id string) (*entity.Quotation, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *memQuotationRepo) List(_ context.Context, createdBy string, limit, offset int) ([]*entity.Quotation, error) {
	out := []*entity.Quotation{}
	for _, q := range r.quotes {
		if createdBy == "" || q.CreatedBy == createdBy {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	if offset >= len(out) {
		return []*entity.Quotation{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memQuotationRepo) CreateItem(_ context.Context, it *entity.QuotationItem) error {
	cp := *it
	if r.numeric {
		cp.Quantity = cp.Quantity.Round(3)
		cp.Rate = cp.Rate.Round(2)
		cp.DiscountPercent = cp.DiscountPercent.Round(2)
		cp.GSTPercent = cp.GSTPercent.Round(2)
		cp.Amount = cp.Amount.Round(2)
	}
	r.items[it.QuotationID] = append(r.items[it.QuotationID], &cp)
	return nil
}

func (r *memQuotationRepo) DeleteItems(_ context.Context, quotationID string) error {
	delete(r.items, quotationID)
	return nil
}

func (r *memQuotationRepo) GetItems(_ context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	out := make([]*entity.QuotationItem, 0, len(r.items[quotationID]))
	for _, it := range r.items[quotationID] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTx ejecuta el callback sobre el repo en memoria; con fail devuelve el error sin tocar nada.
type fakeTx struct {
	repo *memQuotationRepo
	fail error
}

func (f *fakeTx) RunQuotation(_ context.Context, fn func(repository.QuotationRepository) error) error {
	if f.fail != nil {
		return f.fail
	}
	return fn(f.repo)
}

type memProductRepo map[string]*entity.Product

func (r memProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	return r[code], nil
}

func (r memProductRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type fakePDF struct {
	calls int
	last  appquote.Document
	err   error
}

func (f *fakePDF) GenerateQuotationPDF(_ context.Context, doc appquote.Document) ([]byte, error) {
	f.calls++
	f.last = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 " + doc.Quotation.Number), nil
}

type fakeXLSX struct{}

func (fakeXLSX) ExportQuotation(_ context.Context, doc appquote.Document) ([]byte, error) {
	return []byte("xlsx:" + doc.Quotation.Number), nil
}

type fakeStore struct {
	name string
	mime string
	err  error
}

func (f *fakeStore) Upload(_ context.Context, fileName, mimeType string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.name, f.mime = fileName, mimeType
	return "https://drive.example/" + fileName, nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

type fixture struct {
	uc    *appquote.QuotationUseCase
	repo  *memQuotationRepo
	tx    *fakeTx
	pdf   *fakePDF
	store *fakeStore
}

var fixedNow = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newMemQuotationRepo()
	tx := &fakeTx{repo: repo}
	pdf := &fakePDF{}
	store := &fakeStore{}
	products := memProductRepo{
		"MS-PIPE-50": {Code: "MS-PIPE-50", Name: "MS Pipe 50NB", Unit: "MT", Rate: decimal.NewFromInt(100), GSTPercent: decimal.NewFromInt(18)},
	}
	uc := appquote.NewQuotationUseCase(tx, repo, products, pdf, fakeXLSX{}, store, appquote.Config{
		Prefix: "QT",
		Issuer: appquote.Issuer{Name: "Steel Plant Pvt Ltd"},
	}, nil).WithClock(func() time.Time { return fixedNow })
	return &fixture{uc: uc, repo: repo, tx: tx, pdf: pdf, store: store}
}

func amt(s string) dto.Amount { return dto.NewAmount(decimal.RequireFromString(s)) }

func baseRequest() dto.SaveQuotationRequest {
	return dto.SaveQuotationRequest{
		CustomerName: "Acme Builders",
		Items: []dto.QuotationItemInput{
			{Description: "MS Pipe", Quantity: amt("2"), Rate: amt("100"), DiscountPercent: amt("10"), GSTPercent: amt("18")},
		},
	}
}

// ─── Preview ──────────────────────────────────────────────────────────────────

func TestPreview_CGSTSGSTPorDefecto(t *testing.T) {
	f := newFixture(t)

	res := f.uc.Preview(dto.PreviewQuotationRequest{Items: baseRequest().Items})

	assert.Equal(t, "180.00", res.Totals.Subtotal)
	assert.Equal(t, "16.20", res.Totals.CGSTAmount)
	assert.Equal(t, "16.20", res.Totals.SGSTAmount)
	assert.Equal(t, "212.40", res.Totals.GrandTotal)
	assert.Equal(t, "₹212.40", res.GrandTotalINR)
	assert.Equal(t, "Two Hundred and Twelve Rupees Only", res.AmountInWords)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "180", res.Items[0].Amount.String())
}

func TestPreview_DescuentoEspecialMayorAlTotalMuestraCero(t *testing.T) {
	f := newFixture(t)

	res := f.uc.Preview(dto.PreviewQuotationRequest{
		Items:           baseRequest().Items,
		SpecialDiscount: amt("300"),
	})

	assert.Equal(t, "-87.60", res.Totals.GrandTotal)
	assert.Equal(t, "0.00", res.Totals.DisplayGrandTotal)
	assert.Equal(t, "₹0.00", res.GrandTotalINR)
}

func TestPreview_IGSTConTarifaPropia(t *testing.T) {
	f := newFixture(t)
	rate := amt("12")

	res := f.uc.Preview(dto.PreviewQuotationRequest{
		TaxInput: dto.TaxInput{TaxMode: domainquote.TaxModeIGST, IGSTRate: &rate},
		Items:    baseRequest().Items,
	})

	assert.Equal(t, "21.60", res.Totals.IGSTAmount)
	assert.Equal(t, "201.60", res.Totals.GrandTotal)
}

// ─── Create ───────────────────────────────────────────────────────────────────

func TestCreate_GuardaEnDraftConTotales(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)

	assert.Equal(t, domainquote.StatusDraft, res.Status)
	assert.Equal(t, "QT-2026-1792146600000", res.Number)
	assert.Equal(t, "212.40", res.Totals.GrandTotal)
	assert.Equal(t, "u-1", res.CreatedBy)

	stored := f.repo.quotes[res.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.GrandTotal.Equal(decimal.RequireFromString("212.4")))
	assert.Equal(t, domainquote.TaxModeCGSTSGST, stored.TaxMode)
	require.Len(t, f.repo.items[res.ID], 1)
	assert.Equal(t, 1, f.repo.items[res.ID][0].Position)
}

func TestCreate_CompletaLineaDesdeCatalogo(t *testing.T) {
	f := newFixture(t)
	in := baseRequest()
	in.Items = []dto.QuotationItemInput{{ProductCode: "MS-PIPE-50", Quantity: amt("3")}}

	res, err := f.uc.Create(context.Background(), "u-1", in)
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	item := res.Items[0]
	assert.Equal(t, "MS Pipe 50NB", item.Description)
	assert.Equal(t, "MT", item.Unit)
	assert.Equal(t, "100", item.Rate.String())
	assert.Equal(t, "18", item.GSTPercent.String())
	assert.Equal(t, "300", item.Amount.String())
}

func TestCreate_ProductoInexistenteSinTarifa(t *testing.T) {
	f := newFixture(t)
	in := baseRequest()
	in.Items = []dto.QuotationItemInput{{ProductCode: "NO-EXISTE", Quantity: amt("1")}}

	_, err := f.uc.Create(context.Background(), "u-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.repo.quotes)
}

func TestCreate_SinLineas(t *testing.T) {
	f := newFixture(t)
	in := baseRequest()
	in.Items = nil

	_, err := f.uc.Create(context.Background(), "u-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_FalloDeTransaccion(t *testing.T) {
	f := newFixture(t)
	f.tx.fail = errors.New("db caída")

	_, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	assert.Error(t, err)
	assert.Empty(t, f.repo.quotes)
}

// ─── Update / RemoveItem ──────────────────────────────────────────────────────

func TestUpdate_RecalculaYVuelveADraft(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)
	_, _, err = f.uc.GeneratePDF(context.Background(), created.ID)
	require.NoError(t, err)

	in := baseRequest()
	in.TaxMode = domainquote.TaxModeIGST
	in.Items = append(in.Items, dto.QuotationItemInput{Description: "Bend", Quantity: amt("1"), Rate: amt("20")})

	res, err := f.uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, domainquote.StatusDraft, res.Status)
	assert.Equal(t, "200.00", res.Totals.Subtotal)
	assert.Equal(t, "36.00", res.Totals.IGSTAmount)
	assert.Equal(t, "236.00", res.Totals.GrandTotal)
	assert.Len(t, f.repo.items[created.ID], 2)
}

func TestUpdate_NoExiste(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Update(context.Background(), "nada", baseRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveItem_RechazaUltimaLinea(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)

	_, err = f.uc.RemoveItem(context.Background(), created.ID, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, f.repo.items[created.ID], 1)
}

func TestRemoveItem_RenumeraYRecalcula(t *testing.T) {
	f := newFixture(t)
	in := baseRequest()
	in.Items = append(in.Items, dto.QuotationItemInput{Description: "Bend", Quantity: amt("1"), Rate: amt("20")})
	created, err := f.uc.Create(context.Background(), "u-1", in)
	require.NoError(t, err)

	res, err := f.uc.RemoveItem(context.Background(), created.ID, 1)
	require.NoError(t, err)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Bend", res.Items[0].Description)
	assert.Equal(t, 1, res.Items[0].Position)
	assert.Equal(t, "20.00", res.Totals.Subtotal)
}

// ─── PDF / Save / XLSX ────────────────────────────────────────────────────────

func TestGeneratePDF_PasaAGenerated(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)

	data, name, err := f.uc.GeneratePDF(context.Background(), created.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, data)
	assert.Equal(t, created.Number+".pdf", name)
	assert.Equal(t, domainquote.StatusGenerated, f.repo.quotes[created.ID].Status)
	assert.Equal(t, "Steel Plant Pvt Ltd", f.pdf.last.Issuer.Name)
	assert.Equal(t, "212.40", f.pdf.last.Totals.GrandTotal.StringFixed(2))
}

func TestGeneratePDF_TotalesIgualesALosGuardadosConEscalaDeColumna(t *testing.T) {
	f := newFixture(t)
	f.repo.numeric = true
	cgst, sgst := amt("9.005"), amt("9.004")
	in := baseRequest()
	in.TaxInput = dto.TaxInput{TaxMode: domainquote.TaxModeCGSTSGST, CGSTRate: &cgst, SGSTRate: &sgst}
	in.TotalFlatDiscount = amt("0.004")
	in.SpecialDiscount = amt("0.125")
	in.Items = []dto.QuotationItemInput{
		{Description: "Tornillo", Quantity: amt("10"), Rate: amt("0.125"), DiscountPercent: amt("12.345"), GSTPercent: amt("18")},
		{Description: "Tuerca", Quantity: amt("3.3335"), Rate: amt("7.499"), GSTPercent: amt("18")},
	}

	created, err := f.uc.Create(context.Background(), "u-1", in)
	require.NoError(t, err)

	_, _, err = f.uc.GeneratePDF(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.Totals, domainquote.ToPayload(f.pdf.last.Totals))
	stored := f.repo.quotes[created.ID]
	assert.True(t, stored.GrandTotal.Equal(f.pdf.last.Totals.GrandTotal), "guardado %s, pdf %s", stored.GrandTotal, f.pdf.last.Totals.GrandTotal)
	require.Len(t, created.Items, 2)
	assert.Equal(t, "1.14", created.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "0.13", created.Items[0].Rate.StringFixed(2))
}

func TestGeneratePDF_FalloDeRenderNoCambiaEstado(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)
	f.pdf.err = errors.New("fuente no encontrada")

	_, _, err = f.uc.GeneratePDF(context.Background(), created.ID)
	assert.Error(t, err)
	assert.Equal(t, domainquote.StatusDraft, f.repo.quotes[created.ID].Status)
	assert.Equal(t, "212.4", f.repo.quotes[created.ID].GrandTotal.String())
}

func TestSave_RequierePDFGenerado(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)

	_, err = f.uc.Save(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSave_SubeConNumeroYGuardaURL(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)
	_, _, err = f.uc.GeneratePDF(context.Background(), created.ID)
	require.NoError(t, err)

	res, err := f.uc.Save(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, domainquote.StatusPersisted, res.Status)
	assert.Equal(t, created.Number+".pdf", f.store.name)
	assert.Equal(t, "application/pdf", f.store.mime)
	assert.Equal(t, "https://drive.example/"+created.Number+".pdf", res.DocumentURL)
	assert.Equal(t, res.DocumentURL, f.repo.quotes[created.ID].DocumentURL)
}

func TestSave_FalloDeSubidaNoCambiaEstado(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)
	_, _, err = f.uc.GeneratePDF(context.Background(), created.ID)
	require.NoError(t, err)
	f.store.err = errors.New("quota exceeded")

	_, err = f.uc.Save(context.Background(), created.ID)
	assert.Error(t, err)
	assert.Equal(t, domainquote.StatusGenerated, f.repo.quotes[created.ID].Status)
}

func TestSave_SinAlmacenamiento(t *testing.T) {
	repo := newMemQuotationRepo()
	uc := appquote.NewQuotationUseCase(&fakeTx{repo: repo}, repo, memProductRepo{}, &fakePDF{}, fakeXLSX{}, nil, appquote.Config{}, nil)

	_, err := uc.Save(context.Background(), "x")
	assert.ErrorIs(t, err, appquote.ErrStorageDisabled)
}

func TestExportXLSX(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)

	data, name, err := f.uc.ExportXLSX(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "xlsx:"+created.Number, string(data))
	assert.Equal(t, created.Number+".xlsx", name)
	assert.Equal(t, domainquote.StatusDraft, f.repo.quotes[created.ID].Status, "exportar no cambia el estado")
}

// ─── List ─────────────────────────────────────────────────────────────────────

func TestList_FiltraPorCreador(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), "u-1", baseRequest())
	require.NoError(t, err)
	f.uc.WithClock(func() time.Time { return fixedNow.Add(time.Second) })
	_, err = f.uc.Create(context.Background(), "u-2", baseRequest())
	require.NoError(t, err)

	mine, err := f.uc.List(context.Background(), "u-1", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)
	assert.Equal(t, 20, mine.Page.Limit)

	all, err := f.uc.List(context.Background(), "", dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}
