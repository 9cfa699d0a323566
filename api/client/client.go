package client

import (
	"context"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// API accesses the panel's Client API on behalf of the authenticated
// account.
type API struct {
	c *rest.Client
}

// NewAPI returns a Client API accessor bound to the given session binding.
func NewAPI(c *rest.Client) *API {
	return &API{c: c}
}

// Account retrieves the account the API key belongs to.
func (a *API) Account(ctx context.Context) (*Account, error) {
	var env rest.Object[Account]
	if err := a.c.Get(ctx, "api/client/account", nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// ListServers retrieves a page of servers visible to the account.
func (a *API) ListServers(ctx context.Context, opts *ListOptions) ([]Server, *Pagination, error) {
	var env rest.List[Server]
	if err := a.c.Get(ctx, "api/client", opts.values(), &env); err != nil {
		return nil, nil, err
	}
	return rest.Items(env), paginationFrom(env.Meta), nil
}

// Server retrieves a single server by its short identifier.
func (a *API) Server(ctx context.Context, identifier string) (*Server, error) {
	var env rest.Object[Server]
	if err := a.c.Get(ctx, "api/client/servers/"+identifier, nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Resources retrieves a server's current state and resource utilization.
func (a *API) Resources(ctx context.Context, identifier string) (*Resources, error) {
	var env rest.Object[Resources]
	if err := a.c.Get(ctx, "api/client/servers/"+identifier+"/resources", nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// SendCommand writes a command to a server's console. The daemon accepts
// the command without reporting its outcome.
func (a *API) SendCommand(ctx context.Context, identifier, command string) error {
	body := struct {
		Command string `json:"command"`
	}{Command: command}
	return a.c.Post(ctx, "api/client/servers/"+identifier+"/command", body, nil)
}

// SetPowerState sends a power signal to a server.
func (a *API) SetPowerState(ctx context.Context, identifier string, signal PowerSignal) error {
	body := struct {
		Signal PowerSignal `json:"signal"`
	}{Signal: signal}
	return a.c.Post(ctx, "api/client/servers/"+identifier+"/power", body, nil)
}
