package admin

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func authTestApp(t *testing.T) *fiber.App {
	t.Helper()
	viper.Set("security.jwt_secret", testSecret)

	app := fiber.New()
	app.Use(authMiddleware)
	app.Get("/probe", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("operator").(string))
	})

	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := authTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app := authTestApp(t)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "mallory",
		"adm": true,
	}))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareNotAnAdministrator(t *testing.T) {
	app := authTestApp(t)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, jwt.MapClaims{
		"sub": "viewer",
	}))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := authTestApp(t)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, jwt.MapClaims{
		"sub": "operator",
		"adm": true,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := authTestApp(t)

	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, jwt.MapClaims{
		"sub": "operator",
		"adm": true,
	}))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
