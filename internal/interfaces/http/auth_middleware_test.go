package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/creators-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/creators-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
)

func testIssuer(t *testing.T, ttl time.Duration) *pkgjwt.Issuer {
	t.Helper()
	iss, err := pkgjwt.NewIssuer(pkgjwt.Config{Secret: testJWTSecret, Issuer: "creators-api-test", TTL: ttl})
	require.NoError(t, err)
	return iss
}

// buildProtectedApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildProtectedApp(iss *pkgjwt.Issuer, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(iss),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, iss *pkgjwt.Issuer, role string) string {
	t.Helper()
	tok, err := iss.Generate(testUserID, role)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El usuario tiene el rol requerido → pasa (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := buildProtectedApp(iss, "admin")
	resp := doRequest(t, app, tokenForRole(t, iss, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

// El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_BusinessAccedeRutaMultiRol(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := buildProtectedApp(iss, "admin", "business")
	resp := doRequest(t, app, tokenForRole(t, iss, "business"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Rol distinto al requerido → HTTP 403 Forbidden.
func TestRequireRole_InfluencerBloqueadoEnRutaAdmin(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := buildProtectedApp(iss, "admin")
	resp := doRequest(t, app, tokenForRole(t, iss, "influencer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Token con rol vacío (token legacy sin el claim) → HTTP 401.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := buildProtectedApp(iss, "admin")

	resp := doRequest(t, app, tokenForRole(t, iss, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := buildProtectedApp(iss, "admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Header sin esquema Bearer → HTTP 401.
func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := buildProtectedApp(iss, "admin")
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := buildProtectedApp(iss, "admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token expirado → HTTP 401 con código TOKEN_EXPIRED.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	expirado := testIssuer(t, -time.Minute)
	app := buildProtectedApp(expirado, "admin")
	resp := doRequest(t, app, tokenForRole(t, expirado, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOKEN_EXPIRED")
}

// El middleware deja user_id y role en locals.
func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	iss := testIssuer(t, time.Hour)
	app := fiber.New()
	app.Get("/claims", apphttp.AuthMiddleware(iss), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/claims", nil)
	req.Header.Set("Authorization", tokenForRole(t, iss, "business"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "business", body["role"])
}
