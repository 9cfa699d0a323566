package application

import (
	"context"
	"fmt"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// Servers accesses the panel's server resources.
type Servers struct {
	c *rest.Client
}

// NewServers returns a Servers accessor bound to the given session binding.
func NewServers(c *rest.Client) *Servers {
	return &Servers{c: c}
}

// List retrieves a page of servers.
func (s *Servers) List(ctx context.Context, opts *ListOptions) ([]Server, *Pagination, error) {
	var env rest.List[Server]
	if err := s.c.Get(ctx, "api/application/servers", opts.values(), &env); err != nil {
		return nil, nil, err
	}
	return rest.Items(env), paginationFrom(env.Meta), nil
}

// Get retrieves a single server by its internal ID.
func (s *Servers) Get(ctx context.Context, id int64) (*Server, error) {
	var env rest.Object[Server]
	if err := s.c.Get(ctx, fmt.Sprintf("api/application/servers/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// GetExternal retrieves a single server by its external ID.
func (s *Servers) GetExternal(ctx context.Context, externalID string) (*Server, error) {
	var env rest.Object[Server]
	if err := s.c.Get(ctx, "api/application/servers/external/"+externalID, nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Create provisions a new server. The panel starts the install process
// asynchronously; the returned server reports Container.Installed false
// until it completes.
func (s *Servers) Create(ctx context.Context, params CreateServerParams) (*Server, error) {
	var env rest.Object[Server]
	if err := s.c.Post(ctx, "api/application/servers", params, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Suspend stops a server and prevents it from being started.
func (s *Servers) Suspend(ctx context.Context, id int64) error {
	return s.c.Post(ctx, fmt.Sprintf("api/application/servers/%d/suspend", id), nil, nil)
}

// Unsuspend lifts a server's suspension.
func (s *Servers) Unsuspend(ctx context.Context, id int64) error {
	return s.c.Post(ctx, fmt.Sprintf("api/application/servers/%d/unsuspend", id), nil, nil)
}

// Reinstall re-runs the server's egg install script. Existing files may be
// overwritten by the script.
func (s *Servers) Reinstall(ctx context.Context, id int64) error {
	return s.c.Post(ctx, fmt.Sprintf("api/application/servers/%d/reinstall", id), nil, nil)
}

// Delete removes a server and its data.
func (s *Servers) Delete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("api/application/servers/%d", id))
}

// ForceDelete removes a server even when the daemon cannot be reached to
// clean up its files.
func (s *Servers) ForceDelete(ctx context.Context, id int64) error {
	return s.c.Delete(ctx, fmt.Sprintf("api/application/servers/%d/force", id))
}
