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

	"github.com/jhoicas/essence-api/internal/application/auth"
	"github.com/jhoicas/essence-api/internal/domain/entity"
	apphttp "github.com/jhoicas/essence-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/essence-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAdminID   = "00000000-0000-0000-0000-000000000001"
	testVisitorID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "essence-test"
	testExpDays   = 7
)

// fakeUserRepo repositorio de usuarios en memoria para los tests.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func testUsers() []*entity.User {
	now := time.Now()
	return []*entity.User{
		{ID: testAdminID, Email: "admin@essence.com", IsAdmin: true, CreatedAt: now, UpdatedAt: now},
		{ID: testVisitorID, Email: "visitante@essence.com", IsAdmin: false, CreatedAt: now, UpdatedAt: now},
	}
}

// buildTestApp construye una aplicación Fiber mínima con el AuthMiddleware y
// un handler dummy que devuelve 200 si el guard deja pasar.
func buildTestApp(users ...*entity.User) *fiber.App {
	authUC := auth.NewAuthUseCase(newFakeUserRepo(users...), auth.JWTConfig{
		Secret:  testJWTSecret,
		ExpDays: testExpDays,
		Issuer:  testIssuer,
	})
	app := fiber.New()
	app.Post("/protected", apphttp.AuthMiddleware(authUC), func(c *fiber.Ctx) error {
		user := apphttp.GetAuthUser(c)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":    true,
			"email": user.Email,
		})
	})
	return app
}

// doRequest lanza una petición POST /protected con (o sin) cookie de sesión.
func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpDays)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — secuencia cookie -> token -> usuario -> admin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Admin con token válido → debe pasar (HTTP 200).
func TestAuthMiddleware_AdminPasa(t *testing.T) {
	app := buildTestApp(testUsers()...)
	resp := doRequest(t, app, tokenFor(t, testAdminID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un admin con token válido debe poder mutar el catálogo")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin@essence.com", body["email"],
		"el usuario autenticado debe quedar disponible en Locals")
}

// Caso 2: Sin cookie → HTTP 401.
func TestAuthMiddleware_SinCookie_Retorna401(t *testing.T) {
	app := buildTestApp(testUsers()...)
	resp := doRequest(t, app, "") // sin cookie
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

// Caso 3: Token malformado → HTTP 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(testUsers()...)
	resp := doRequest(t, app, "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token firmado pero expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(testUsers()...)
	// Expiración -1 día: más viejo que su propia vida útil.
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token más viejo que su expiración embebida es inválido")
}

// Caso 5: Token válido pero el usuario ya no existe → HTTP 403.
func TestAuthMiddleware_UsuarioInexistente_Retorna403(t *testing.T) {
	app := buildTestApp(testUsers()...)
	resp := doRequest(t, app, tokenFor(t, "00000000-0000-0000-0000-00000000dead"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 6: Token válido de un usuario sin flag de admin → HTTP 403 siempre.
func TestAuthMiddleware_NoAdmin_Retorna403(t *testing.T) {
	app := buildTestApp(testUsers()...)
	resp := doRequest(t, app, tokenFor(t, testVisitorID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un no-admin debe recibir Forbidden aunque su token sea válido")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, testIssuer, testExpDays)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAdminID, userID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, testIssuer, testExpDays)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testJWTSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
