package utils

import (
	"io"
	"net/http/httptest"
	"testing"

	"skillcompass/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func whoamiApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		sub, err := ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(sub)
	})
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	token, err := GenerateJWTToken(42, cfg)
	assert.NoError(t, err)

	app := whoamiApp(cfg)
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "42", string(body))
}

func TestExtractUserIDRejectsBadTokens(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	app := whoamiApp(cfg)

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	other, err := GenerateJWTToken(42, &config.Config{JWTSecret: "othersecret"})
	assert.NoError(t, err)

	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", other)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
