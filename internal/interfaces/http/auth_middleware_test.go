package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refaccionaria/autopartes-api/internal/application/dto"
	"github.com/refaccionaria/autopartes-api/internal/domain/entity"
	apphttp "github.com/refaccionaria/autopartes-api/internal/interfaces/http"
	pkgjwt "github.com/refaccionaria/autopartes-api/pkg/jwt"
)

func TestJWTGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 7, "maria", entity.RoleDueno, testIssuer, 1)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, username, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "maria", username)
	assert.Equal(t, entity.RoleDueno, role)
}

func TestJWTParseWrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "admin", entity.RoleAdmin, testIssuer, 1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestJWTParseExpired(t *testing.T) {
	// expHours negativo produce un token ya vencido
	tok, err := pkgjwt.Generate(testJWTSecret, 1, "admin", entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}

func TestJWTEmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "admin", entity.RoleAdmin, testIssuer, 1)
	assert.Error(t, err)
}

// app mínima con una ruta protegida que expone la identidad de c.Locals.
func protectedApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":       apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})
	app.Get("/protegido", handlers...)
	return app
}

func TestAuthMiddlewareSinCookie(t *testing.T) {
	app := protectedApp()

	resp := doRequest(t, app, http.MethodGet, "/protegido", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Acceso denegado. Token no proporcionado.", body.Error)
}

func TestAuthMiddlewareTokenInvalido(t *testing.T) {
	app := protectedApp()

	resp := doRequest(t, app, http.MethodGet, "/protegido", apphttp.CookieName+"=basura", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Token inválido", body.Error)
}

func TestAuthMiddlewareTokenExpirado(t *testing.T) {
	app := protectedApp()
	tok, err := pkgjwt.Generate(testJWTSecret, 3, "pedro", entity.RoleVendedor, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/protegido", apphttp.CookieName+"="+tok, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareExtraeIdentidad(t *testing.T) {
	app := protectedApp()
	u := &entity.User{ID: 42, Username: "pedro", Role: entity.RoleVendedor}

	resp := doRequest(t, app, http.MethodGet, "/protegido", cookieFor(t, u), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "pedro", body.Username)
	assert.Equal(t, entity.RoleVendedor, body.Role)
}

func TestRequireRolePermitido(t *testing.T) {
	app := protectedApp(apphttp.RequireRole(entity.RoleDueno, entity.RoleAdmin))
	u := &entity.User{ID: 1, Username: "dueno", Role: entity.RoleDueno}

	resp := doRequest(t, app, http.MethodGet, "/protegido", cookieFor(t, u), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleDenegado(t *testing.T) {
	app := protectedApp(apphttp.RequireRole(entity.RoleAdmin))
	u := &entity.User{ID: 2, Username: "pedro", Role: entity.RoleVendedor}

	resp := doRequest(t, app, http.MethodGet, "/protegido", cookieFor(t, u), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "No tienes permisos para realizar esta acción", body.Error)
}

func TestRequireRoleSinIdentidad(t *testing.T) {
	// RequireRole sin AuthMiddleware antes: no hay rol en Locals
	app := fiber.New()
	app.Get("/solo-admin", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, http.MethodGet, "/solo-admin", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
