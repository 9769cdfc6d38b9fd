package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	domainaccess "github.com/jhoicas/o2d-pipeline-api/internal/domain/access"
	apphttp "github.com/jhoicas/o2d-pipeline-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/o2d-pipeline-api/pkg/jwt"
)

func buildPageApp() *fiber.App {
	app := fiber.New()
	app.Get("/quotations",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePage(domainaccess.QuotationPage, nil),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequirePage(t *testing.T) {
	cases := []struct {
		name string
		sub  pkgjwt.Subject
		want int
	}{
		{"admin puede todo", pkgjwt.Subject{Role: "admin"}, http.StatusOK},
		{"sistema lead-to-order", pkgjwt.Subject{SystemAccess: []string{"lead-to-order"}}, http.StatusOK},
		{"página por nombre", pkgjwt.Subject{PageAccess: []string{"quotation"}}, http.StatusOK},
		{"otro sistema", pkgjwt.Subject{SystemAccess: []string{"o2d"}}, http.StatusForbidden},
		{"lista de páginas excluye el resto del sistema", pkgjwt.Subject{
			SystemAccess: []string{"lead-to-order"},
			PageAccess:   []string{"/lead-to-order/leads"},
		}, http.StatusForbidden},
		{"sin acceso", pkgjwt.Subject{}, http.StatusForbidden},
	}
	app := buildPageApp()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodGet, "/quotations", tokenFor(t, tc.sub), nil)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestRequirePage_SinAuthMiddleware_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/q", apphttp.RequirePage(domainaccess.QuotationPage, nil), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, http.MethodGet, "/q", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
