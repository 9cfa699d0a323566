package application

import (
	"context"
	"fmt"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// Locations accesses the panel's location resources.
type Locations struct {
	c *rest.Client
}

// NewLocations returns a Locations accessor bound to the given session binding.
func NewLocations(c *rest.Client) *Locations {
	return &Locations{c: c}
}

// List retrieves a page of locations.
func (l *Locations) List(ctx context.Context, opts *ListOptions) ([]Location, *Pagination, error) {
	var env rest.List[Location]
	if err := l.c.Get(ctx, "api/application/locations", opts.values(), &env); err != nil {
		return nil, nil, err
	}
	return rest.Items(env), paginationFrom(env.Meta), nil
}

// Get retrieves a single location by ID.
func (l *Locations) Get(ctx context.Context, id int64) (*Location, error) {
	var env rest.Object[Location]
	if err := l.c.Get(ctx, fmt.Sprintf("api/application/locations/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Create adds a new location.
func (l *Locations) Create(ctx context.Context, params LocationParams) (*Location, error) {
	var env rest.Object[Location]
	if err := l.c.Post(ctx, "api/application/locations", params, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Update modifies an existing location.
func (l *Locations) Update(ctx context.Context, id int64, params LocationParams) (*Location, error) {
	var env rest.Object[Location]
	if err := l.c.Patch(ctx, fmt.Sprintf("api/application/locations/%d", id), params, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Delete removes a location. The panel refuses to delete a location that
// still has nodes assigned.
func (l *Locations) Delete(ctx context.Context, id int64) error {
	return l.c.Delete(ctx, fmt.Sprintf("api/application/locations/%d", id))
}
