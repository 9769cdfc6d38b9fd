package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/catalog"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
)

type stubProductRepo struct {
	products   []*entity.Product
	lastSearch string
	lastLimit  int
}

func (s *stubProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubProductRepo) List(_ context.Context, search string, limit, _ int) ([]*entity.Product, error) {
	s.lastSearch, s.lastLimit = search, limit
	return s.products, nil
}

func newRepo() *stubProductRepo {
	return &stubProductRepo{products: []*entity.Product{
		{ID: "p1", Code: "MS-PIPE-50", Name: "MS Pipe 50NB", Unit: "MT", Rate: decimal.NewFromInt(100), GSTPercent: decimal.NewFromInt(18), Active: true},
		{ID: "p2", Code: "OLD-COIL", Name: "Coil (descontinuado)", Unit: "MT", Active: false},
	}}
}

func TestList_AplicaPaginaPorDefecto(t *testing.T) {
	repo := newRepo()
	uc := catalog.NewCatalogUseCase(repo)

	res, err := uc.List(context.Background(), dto.ProductListRequest{Search: "  pipe "})
	require.NoError(t, err)
	assert.Equal(t, "pipe", repo.lastSearch)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Len(t, res.Items, 2)
}

func TestGetByCode(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newRepo())

	p, err := uc.GetByCode(context.Background(), "MS-PIPE-50")
	require.NoError(t, err)
	assert.Equal(t, "MS Pipe 50NB", p.Name)
	assert.Equal(t, "18", p.GSTPercent.String())

	_, err = uc.GetByCode(context.Background(), "OLD-COIL")
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inactivo no se ofrece")

	_, err = uc.GetByCode(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
