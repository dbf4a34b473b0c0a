package util

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/fadilmartias/hr-backend/internal/apperror"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func call(t *testing.T, app *fiber.App, path string) (int, OrderedErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out OrderedErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestErrorHandlerMapsKinds(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/missing", func(c *fiber.Ctx) error { return apperror.NotFound("Interview not found.") })
	app.Get("/invalid", func(c *fiber.Ctx) error { return apperror.Validation("Description cannot be empty.") })
	app.Get("/llm", func(c *fiber.Ctx) error {
		return apperror.External("Failed to analyze interview with LLM", errors.New("timeout"))
	})
	app.Get("/db", func(c *fiber.Ctx) error { return apperror.Persistence("Database error", errors.New("boom")) })
	app.Get("/plain", func(c *fiber.Ctx) error { return errors.New("unexpected") })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/missing", fiber.StatusNotFound, "Interview not found."},
		{"/invalid", fiber.StatusBadRequest, "Description cannot be empty."},
		{"/llm", fiber.StatusBadGateway, "Failed to analyze interview with LLM"},
		{"/db", fiber.StatusInternalServerError, "Database error"},
		{"/plain", fiber.StatusInternalServerError, "Internal Server Error"},
		{"/no-route", fiber.StatusNotFound, "Cannot GET /no-route"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			status, body := call(t, app, tt.path)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestSuccessResponseDefaultsToOK(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{Message: "ok", Data: fiber.Map{"n": 1}})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, true, out["success"])
	assert.Equal(t, map[string]any{"n": float64(1)}, out["data"])
}
