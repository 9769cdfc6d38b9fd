package access

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/repository"
)

// GrantOf construye el Grant de acceso de un usuario. nil para usuario nil.
func GrantOf(u *entity.User) *domainaccess.Grant {
	if u == nil {
		return nil
	}
	return domainaccess.NewGrant(u.SystemAccess, u.PageAccess, u.Role, u.UserType)
}

// AccessUseCase decisiones de acceso con el acceso vigente en la base de datos.
type AccessUseCase struct {
	userRepo  repository.UserRepository
	evaluator *domainaccess.Evaluator
}

// NewAccessUseCase construye el caso de uso. evaluator nil usa la tabla de páginas por defecto.
func NewAccessUseCase(userRepo repository.UserRepository, evaluator *domainaccess.Evaluator) *AccessUseCase {
	if evaluator == nil {
		evaluator = domainaccess.Default()
	}
	return &AccessUseCase{userRepo: userRepo, evaluator: evaluator}
}

// grant carga el usuario; un usuario inexistente o inactivo no tiene acceso (Grant nil).
func (uc *AccessUseCase) grant(ctx context.Context, userID string) (*domainaccess.Grant, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("access: obtener usuario: %w", err)
	}
	if u == nil || u.Status != entity.UserStatusActive {
		return nil, nil
	}
	return GrantOf(u), nil
}

// Check decide si el usuario puede ver path y devuelve la ruta a la que redirigir si no.
func (uc *AccessUseCase) Check(ctx context.Context, userID, path string) (*dto.AccessCheckResponse, error) {
	g, err := uc.grant(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.AccessCheckResponse{
		Path:        path,
		Allowed:     uc.evaluator.IsPathAllowed(path, g),
		DefaultPath: uc.evaluator.DefaultAllowedPath(g),
	}, nil
}

// DefaultPath ruta de aterrizaje del usuario.
func (uc *AccessUseCase) DefaultPath(ctx context.Context, userID string) (string, error) {
	g, err := uc.grant(ctx, userID)
	if err != nil {
		return "", err
	}
	return uc.evaluator.DefaultAllowedPath(g), nil
}

// UpdateAccess reemplaza rol, tipo y listas de acceso del usuario (solo administradores).
func (uc *AccessUseCase) UpdateAccess(ctx context.Context, userID string, in dto.UpdateAccessRequest) (*dto.UserAccessResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("access: obtener usuario: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.UserType != nil {
		u.UserType = *in.UserType
	}
	if in.SystemAccess != nil {
		u.SystemAccess = domainaccess.NormalizeSystems(in.SystemAccess)
	}
	if in.PageAccess != nil {
		u.PageAccess = domainaccess.NormalizePages(in.PageAccess)
	}
	u.UpdatedAt = time.Now()
	if err := uc.userRepo.UpdateAccess(ctx, u); err != nil {
		return nil, err
	}
	g := GrantOf(u)
	return &dto.UserAccessResponse{
		User: *ToUserResponse(u),
		Legacy: dto.AccessGrantPayload{
			SystemAccess: g.SystemAccessString(),
			PageAccess:   g.PageAccessString(),
			Role:         u.Role,
			UserType:     u.UserType,
		},
	}, nil
}

// Pages tabla estática de páginas y sistemas.
func (uc *AccessUseCase) Pages() dto.PagesResponse {
	pages := make([]dto.PageInfo, 0, len(domainaccess.DefaultPages))
	for _, p := range domainaccess.DefaultPages {
		pages = append(pages, dto.PageInfo{Name: p.Name, Route: p.Route, System: p.System})
	}
	return dto.PagesResponse{Systems: domainaccess.Systems(), Pages: pages}
}

// ToUserResponse convierte la entidad a su salida HTTP (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	systems := u.SystemAccess
	if systems == nil {
		systems = []string{}
	}
	pages := u.PageAccess
	if pages == nil {
		pages = []string{}
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		UserType:     u.UserType,
		SystemAccess: systems,
		PageAccess:   pages,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
