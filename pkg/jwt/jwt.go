package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el acceso del usuario.
// El acceso viaja en el token para que los middlewares decidan sin consultar la DB;
// el endpoint /api/access/check usa siempre el acceso vigente en la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string   `json:"user_id"`
	Role         string   `json:"role"`
	UserType     string   `json:"user_type,omitempty"`
	SystemAccess []string `json:"system_access,omitempty"`
	PageAccess   []string `json:"page_access,omitempty"`
}

// Subject datos del usuario que se firman en el token.
type Subject struct {
	UserID       string
	Role         string
	UserType     string
	SystemAccess []string
	PageAccess   []string
}

// Generate genera un token JWT firmado (HS256) para el sujeto.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       sub.UserID,
		Role:         sub.Role,
		UserType:     sub.UserType,
		SystemAccess: sub.SystemAccess,
		PageAccess:   sub.PageAccess,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
