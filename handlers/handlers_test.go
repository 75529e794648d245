package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"travel-webapp/handlers"
	"travel-webapp/router"
	"travel-webapp/storage"
)

func newTestApp(t *testing.T) (*fiber.App, *storage.MemStorage) {
	t.Helper()
	t.Setenv("SIGN", "test-signing-secret")

	store := storage.New()
	app := fiber.New()
	router.SetupRoutes(app, handlers.New(store))

	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, route string, body []byte, header map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, route, bytes.NewBuffer(body))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	res, err := app.Test(req, -1)
	require.NoError(t, err)

	return res
}

func decodeBody(t *testing.T, res *http.Response, out interface{}) {
	t.Helper()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
