package application

import (
	"context"
	"fmt"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// Nests accesses the panel's nest and egg resources. Nests and eggs are
// read-only through the API; they are managed in the panel's admin UI.
type Nests struct {
	c *rest.Client
}

// NewNests returns a Nests accessor bound to the given session binding.
func NewNests(c *rest.Client) *Nests {
	return &Nests{c: c}
}

// List retrieves a page of nests.
func (n *Nests) List(ctx context.Context, opts *ListOptions) ([]Nest, *Pagination, error) {
	var env rest.List[Nest]
	if err := n.c.Get(ctx, "api/application/nests", opts.values(), &env); err != nil {
		return nil, nil, err
	}
	return rest.Items(env), paginationFrom(env.Meta), nil
}

// Get retrieves a single nest by ID.
func (n *Nests) Get(ctx context.Context, id int64) (*Nest, error) {
	var env rest.Object[Nest]
	if err := n.c.Get(ctx, fmt.Sprintf("api/application/nests/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// ListEggs retrieves all eggs belonging to a nest.
func (n *Nests) ListEggs(ctx context.Context, nestID int64) ([]Egg, error) {
	var env rest.List[Egg]
	if err := n.c.Get(ctx, fmt.Sprintf("api/application/nests/%d/eggs", nestID), nil, &env); err != nil {
		return nil, err
	}
	return rest.Items(env), nil
}

// GetEgg retrieves a single egg from a nest.
func (n *Nests) GetEgg(ctx context.Context, nestID, eggID int64) (*Egg, error) {
	var env rest.Object[Egg]
	if err := n.c.Get(ctx, fmt.Sprintf("api/application/nests/%d/eggs/%d", nestID, eggID), nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}
