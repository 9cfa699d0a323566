package application

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
	"github.com/pterosdk/go-pterodactyl/internal/testutil"
)

func newTestClient(t *testing.T, srv *httptest.Server) *rest.Client {
	t.Helper()

	base, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return rest.New(base, "test-key", srv.Client())
}

func TestLocationsList(t *testing.T) {
	t.Parallel()

	body := `{
		"object": "list",
		"data": [
			{"object": "location", "attributes": {"id": 1, "short": "us", "long": "US East"}},
			{"object": "location", "attributes": {"id": 2, "short": "eu", "long": "EU West"}}
		],
		"meta": {"pagination": {"total": 2, "count": 2, "per_page": 50, "current_page": 1, "total_pages": 1}}
	}`

	srv := testutil.NewPanelServer(t, "/api/application/locations", "test-key", body, http.StatusOK)
	defer srv.Close()

	locations := NewLocations(newTestClient(t, srv))

	got, page, err := locations.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "us", got[0].Short)
	assert.Equal(t, "EU West", got[1].Long)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.CurrentPage)
}

func TestLocationsListPagination(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object": "list", "data": [], "meta": {"pagination": {"total": 0, "count": 0, "per_page": 10, "current_page": 3, "total_pages": 0}}}`))
	}))
	defer srv.Close()

	locations := NewLocations(newTestClient(t, srv))

	_, page, err := locations.List(context.Background(), &ListOptions{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, page.CurrentPage)
}

func TestLocationsCreate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/application/locations", r.URL.Path)

		var params LocationParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "sg", params.Short)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"object": "location", "attributes": {"id": 7, "short": "sg", "long": "Singapore"}}`))
	}))
	defer srv.Close()

	locations := NewLocations(newTestClient(t, srv))

	loc, err := locations.Create(context.Background(), LocationParams{Short: "sg", Long: "Singapore"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), loc.ID)
	assert.Equal(t, "Singapore", loc.Long)
}

func TestLocationsDelete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/application/locations/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	locations := NewLocations(newTestClient(t, srv))

	require.NoError(t, locations.Delete(context.Background(), 7))
}
