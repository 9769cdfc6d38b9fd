package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	appaccess "github.com/jhoicas/o2d-pipeline-api/internal/application/access"
	"github.com/jhoicas/o2d-pipeline-api/internal/application/dto"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain"
	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/entity"
	"github.com/jhoicas/o2d-pipeline-api/internal/domain/repository"
	"github.com/jhoicas/o2d-pipeline-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtCfg    JWTConfig
	evaluator *domainaccess.Evaluator
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, evaluator: domainaccess.Default()}
}

// RegisterUser crea un usuario: hashea password con bcrypt, normaliza el acceso y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = email
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUser
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		UserType:     strings.TrimSpace(in.UserType),
		SystemAccess: domainaccess.NormalizeSystems(in.SystemAccess),
		PageAccess:   domainaccess.NormalizePages(in.PageAccess),
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return appaccess.ToUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token, usuario y ruta inicial.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	g := appaccess.GrantOf(user)
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID:       user.ID,
		Role:         user.Role,
		UserType:     user.UserType,
		SystemAccess: g.SystemAccess,
		PageAccess:   g.PageAccess,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		User:        *appaccess.ToUserResponse(user),
		DefaultPath: uc.evaluator.DefaultAllowedPath(g),
	}, nil
}
