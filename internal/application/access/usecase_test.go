package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaccess "github.com/jhoicas/o2d-pipeline-api/internal/application/access"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
)

// ─── Fake repo ────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users   map[string]*entity.User
	updated *entity.User
	err     error
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateAccess(_ context.Context, u *entity.User) error {
	f.updated = u
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	return nil, nil
}

func newRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func salesUser() *entity.User {
	return &entity.User{
		ID:         "u-sales",
		Email:      "sales@plant.in",
		Role:       entity.RoleUser,
		PageAccess: []string{"Quotation", "Leads"},
		Status:     entity.UserStatusActive,
	}
}

// ─── Check ────────────────────────────────────────────────────────────────────

func TestCheck_UsuarioConPaginaPermitida(t *testing.T) {
	uc := appaccess.NewAccessUseCase(newRepo(salesUser()), nil)

	res, err := uc.Check(context.Background(), "u-sales", "/lead-to-order/quotation?tab=lead-to-order")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, "/lead-to-order/quotation", res.DefaultPath)
}

func TestCheck_ExclusividadDePaginas(t *testing.T) {
	u := salesUser()
	u.SystemAccess = []string{"o2d"}
	uc := appaccess.NewAccessUseCase(newRepo(u), nil)

	res, err := uc.Check(context.Background(), "u-sales", "/o2d/orders")
	require.NoError(t, err)
	assert.False(t, res.Allowed, "con lista de páginas, una página no listada se niega aunque el sistema esté concedido")
}

func TestCheck_UsuarioInexistenteSinAcceso(t *testing.T) {
	uc := appaccess.NewAccessUseCase(newRepo(), nil)

	res, err := uc.Check(context.Background(), "nadie", "/")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, "/login", res.DefaultPath)
}

func TestCheck_UsuarioInactivoSinAcceso(t *testing.T) {
	u := salesUser()
	u.Status = entity.UserStatusInactive
	uc := appaccess.NewAccessUseCase(newRepo(u), nil)

	res, err := uc.Check(context.Background(), "u-sales", "/lead-to-order/leads")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
}

func TestCheck_ErrorDeRepositorio(t *testing.T) {
	repo := newRepo()
	repo.err = errors.New("db caída")
	uc := appaccess.NewAccessUseCase(repo, nil)

	_, err := uc.Check(context.Background(), "u-sales", "/")
	assert.Error(t, err)
}

func TestDefaultPath_Admin(t *testing.T) {
	admin := &entity.User{ID: "u-admin", Role: "Plant Admin", Status: entity.UserStatusActive}
	uc := appaccess.NewAccessUseCase(newRepo(admin), nil)

	p, err := uc.DefaultPath(context.Background(), "u-admin")
	require.NoError(t, err)
	assert.Equal(t, "/", p)
}

// ─── UpdateAccess ─────────────────────────────────────────────────────────────

func TestUpdateAccess_NormalizaYDevuelveFormatoHeredado(t *testing.T) {
	repo := newRepo(salesUser())
	uc := appaccess.NewAccessUseCase(repo, nil)

	res, err := uc.UpdateAccess(context.Background(), "u-sales", dto.UpdateAccessRequest{
		SystemAccess: []string{" O2D ", "Lead To Order", "o2d", ""},
		PageAccess:   []string{},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)

	assert.Equal(t, []string{"o2d", "leadtoorder"}, repo.updated.SystemAccess)
	assert.Empty(t, repo.updated.PageAccess, "lista vacía revoca las páginas")
	assert.Equal(t, "o2d,leadtoorder", res.Legacy.SystemAccess)
	assert.Equal(t, "", res.Legacy.PageAccess)
	assert.Equal(t, entity.RoleUser, res.User.Role, "rol nulo no se modifica")
}

func TestUpdateAccess_CambiaRol(t *testing.T) {
	repo := newRepo(salesUser())
	uc := appaccess.NewAccessUseCase(repo, nil)
	role := entity.RoleAdmin

	res, err := uc.UpdateAccess(context.Background(), "u-sales", dto.UpdateAccessRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, res.User.Role)
	assert.Equal(t, []string{"Quotation", "Leads"}, res.User.PageAccess, "páginas nulas se conservan")
}

func TestUpdateAccess_UsuarioNoExiste(t *testing.T) {
	uc := appaccess.NewAccessUseCase(newRepo(), nil)

	_, err := uc.UpdateAccess(context.Background(), "nadie", dto.UpdateAccessRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPages_IncluyeSistemasYPaginas(t *testing.T) {
	uc := appaccess.NewAccessUseCase(newRepo(), nil)

	res := uc.Pages()
	assert.Equal(t, []string{"o2d", "lead-to-order", "batchcode"}, res.Systems)
	assert.Contains(t, res.Pages, dto.PageInfo{Name: "Quotation", Route: "/lead-to-order/quotation", System: "lead-to-order"})
}
