package application

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pterosdk/go-pterodactyl/internal/testutil"
)

func TestServersGet(t *testing.T) {
	t.Parallel()

	body := `{
		"object": "server",
		"attributes": {
			"id": 5,
			"external_id": "mc-01",
			"uuid": "1a7ce997-259b-452e-8b4e-cecc464142ca",
			"identifier": "1a7ce997",
			"name": "Wuhu Island",
			"suspended": false,
			"limits": {"memory": 512, "swap": 0, "disk": 200, "io": 500, "cpu": 0},
			"feature_limits": {"databases": 5, "allocations": 5, "backups": 2},
			"user": 1,
			"node": 1,
			"allocation": 17,
			"nest": 1,
			"egg": 5,
			"container": {"startup_command": "java -jar server.jar", "image": "quay.io/pterodactyl/core:java", "installed": true, "environment": {"SERVER_JARFILE": "server.jar"}}
		}
	}`

	srv := testutil.NewPanelServer(t, "/api/application/servers/5", "test-key", body, http.StatusOK)
	defer srv.Close()

	servers := NewServers(newTestClient(t, srv))

	got, err := servers.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "Wuhu Island", got.Name)
	assert.Equal(t, int64(512), got.Limits.Memory)
	assert.True(t, got.Container.Installed)
	assert.Equal(t, "server.jar", got.Container.Environment["SERVER_JARFILE"])
}

func TestServersGetExternal(t *testing.T) {
	t.Parallel()

	body := `{"object": "server", "attributes": {"id": 5, "external_id": "mc-01", "name": "Wuhu Island"}}`

	srv := testutil.NewPanelServer(t, "/api/application/servers/external/mc-01", "test-key", body, http.StatusOK)
	defer srv.Close()

	servers := NewServers(newTestClient(t, srv))

	got, err := servers.GetExternal(context.Background(), "mc-01")
	require.NoError(t, err)
	assert.Equal(t, "mc-01", got.ExternalID)
}

func TestServersCreate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/application/servers", r.URL.Path)

		var params CreateServerParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "Wuhu Island", params.Name)
		assert.Equal(t, int64(17), params.Allocation.Default)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"object": "server", "attributes": {"id": 5, "name": "Wuhu Island", "container": {"installed": false}}}`))
	}))
	defer srv.Close()

	servers := NewServers(newTestClient(t, srv))

	got, err := servers.Create(context.Background(), CreateServerParams{
		Name:        "Wuhu Island",
		UserID:      1,
		EggID:       5,
		DockerImage: "quay.io/pterodactyl/core:java",
		Startup:     "java -jar server.jar",
		Environment: map[string]string{"SERVER_JARFILE": "server.jar"},
		Limits:      Limits{Memory: 512, Disk: 200, IO: 500},
		Allocation:  ServerAllocation{Default: 17},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.False(t, got.Container.Installed)
}

func TestServersPowerEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		call func(ctx context.Context, s *Servers) error
	}{
		{
			name: "suspend",
			path: "/api/application/servers/5/suspend",
			call: func(ctx context.Context, s *Servers) error { return s.Suspend(ctx, 5) },
		},
		{
			name: "unsuspend",
			path: "/api/application/servers/5/unsuspend",
			call: func(ctx context.Context, s *Servers) error { return s.Unsuspend(ctx, 5) },
		},
		{
			name: "reinstall",
			path: "/api/application/servers/5/reinstall",
			call: func(ctx context.Context, s *Servers) error { return s.Reinstall(ctx, 5) },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			servers := NewServers(newTestClient(t, srv))
			require.NoError(t, tt.call(context.Background(), servers))
		})
	}
}

func TestServersForceDelete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/application/servers/5/force", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	servers := NewServers(newTestClient(t, srv))
	require.NoError(t, servers.ForceDelete(context.Background(), 5))
}
