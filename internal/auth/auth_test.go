package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloompos-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret-test-secret-test-secret!",
		POSUsername: "zyrus",
		POSPassword: "zyrus12345",
	}
}

func newTestApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Post("/api/auth/login", LoginHandler(cfg))

	protected := app.Group("", JWTMiddleware(cfg))
	protected.Get("/api/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": c.Locals(CtxUsernameKey)})
	})
	return app
}

func doLogin(t *testing.T, app *fiber.App, username, password string) *http.Response {
	t.Helper()

	body, err := json.Marshal(LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(testConfig())

	resp := doLogin(t, app, "zyrus", "zyrus12345")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload.Token)

	// Token korumalı route'a erişim sağlamalı
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Token)
	meResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
}

func TestLoginWrongCredentials(t *testing.T) {
	app := newTestApp(testConfig())

	resp := doLogin(t, app, "zyrus", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doLogin(t, app, "nobody", "zyrus12345")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	app := newTestApp(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer gecersiz-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
