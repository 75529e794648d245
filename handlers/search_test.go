package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResponseBody struct {
	Success  bool                     `json:"success"`
	Results  []map[string]interface{} `json:"results"`
	Total    int                      `json:"total"`
	Query    string                   `json:"query"`
	Category string                   `json:"category"`
}

func TestUnifiedSearchEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	res := doRequest(t, app, "POST", "/search", []byte(`{"query":"Mercedes"}`), nil)
	require.Equal(t, 200, res.StatusCode)

	var body searchResponseBody
	decodeBody(t, res, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Mercedes", body.Query)
	assert.Equal(t, "all", body.Category)
	assert.Equal(t, len(body.Results), body.Total)
	require.NotEmpty(t, body.Results)
	for _, hit := range body.Results {
		assert.Equal(t, "transport", hit["category"])
	}
}

func TestUnifiedSearchEmptyQueryEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	res := doRequest(t, app, "POST", "/search", []byte(`{"query":"   "}`), nil)
	assert.Equal(t, 400, res.StatusCode)
}

func TestUnifiedSearchWithFilters(t *testing.T) {
	app, _ := newTestApp(t)

	res := doRequest(t, app, "POST", "/search", []byte(`{
		"query": "luxury",
		"category": "transport",
		"filters": {"priceRange": {"min": 60, "max": 100}, "capacity": 4}
	}`), nil)
	require.Equal(t, 200, res.StatusCode)

	var body searchResponseBody
	decodeBody(t, res, &body)
	assert.Equal(t, "transport", body.Category)
	require.NotEmpty(t, body.Results)
	for _, hit := range body.Results {
		assert.Equal(t, "transport", hit["category"])
		capacity, ok := hit["capacity"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, int(capacity), 4)
	}
}
