package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/interfaces/reconcile", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		header string
		query  string
		want   int
	}{
		{name: "Disabled", want: fiber.StatusOK},
		{name: "Header", apiKey: "secret", header: "secret", want: fiber.StatusOK},
		{name: "Query", apiKey: "secret", query: "?api_key=secret", want: fiber.StatusOK},
		{name: "Missing", apiKey: "secret", want: fiber.StatusUnauthorized},
		{name: "Wrong", apiKey: "secret", header: "guess", want: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/interfaces/reconcile"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			resp, err := newApp(Config{ApiKey: tt.apiKey}).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Next(t *testing.T) {
	app := newApp(Config{ApiKey: "secret", Next: func(c *fiber.Ctx) bool { return true }})

	resp, err := app.Test(httptest.NewRequest("GET", "/interfaces/reconcile", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
