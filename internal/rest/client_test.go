package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pterosdk/go-pterodactyl/internal/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, server *httptest.Server, apiKey string) *rest.Client {
	t.Helper()

	base, err := url.Parse(server.URL)
	require.NoError(t, err)

	return rest.New(base, apiKey, server.Client())
}

func TestGetSetsAuthHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/application/locations", r.URL.Path)
		assert.Equal(t, "Bearer ptla_testkey", r.Header.Get("Authorization"))
		assert.Equal(t, "Application/vnd.pterodactyl.v1+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "ptla_testkey")

	var env rest.List[struct{}]
	err := client.Get(context.Background(), "api/application/locations", nil, &env)

	require.NoError(t, err)
	assert.Equal(t, "list", env.Object)
}

func TestGetQueryParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))

		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "key")

	query := url.Values{}
	query.Set("page", "2")
	query.Set("per_page", "25")

	var env rest.List[struct{}]
	require.NoError(t, client.Get(context.Background(), "api/application/servers", query, &env))
}

func TestPostEncodesBody(t *testing.T) {
	t.Parallel()

	type params struct {
		Short string `json:"short"`
		Long  string `json:"long"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got params
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, params{Short: "us", Long: "US East"}, got)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"object":"location","attributes":{"short":"us","long":"US East"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "key")

	var env rest.Object[params]
	err := client.Post(context.Background(), "api/application/locations", params{Short: "us", Long: "US East"}, &env)

	require.NoError(t, err)
	assert.Equal(t, "us", env.Attributes.Short)
}

func TestDeleteNoContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server, "key")

	require.NoError(t, client.Delete(context.Background(), "api/application/locations/1"))
}

func TestAPIErrorPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"code":"NotFoundHttpException","status":"404","detail":"The requested resource was not found on this server."}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, "key")

	err := client.Get(context.Background(), "api/application/servers/999", nil, &rest.Object[struct{}]{})
	require.Error(t, err)

	var apiErr *rest.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "NotFoundHttpException", apiErr.Errors[0].Code)
	assert.Contains(t, apiErr.Error(), "NotFoundHttpException")
}

func TestAPIErrorWithoutPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))
	defer server.Close()

	client := newTestClient(t, server, "key")

	err := client.Get(context.Background(), "api/application/servers", nil, &rest.List[struct{}]{})
	require.Error(t, err)

	var apiErr *rest.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Errors)
}

func TestItems(t *testing.T) {
	t.Parallel()

	type loc struct {
		Short string `json:"short"`
	}

	list := rest.List[loc]{
		Object: "list",
		Data: []rest.Object[loc]{
			{Object: "location", Attributes: loc{Short: "us"}},
			{Object: "location", Attributes: loc{Short: "eu"}},
		},
	}

	items := rest.Items(list)
	require.Len(t, items, 2)
	assert.Equal(t, "us", items[0].Short)
	assert.Equal(t, "eu", items[1].Short)
}
