package application

import (
	"context"
	"fmt"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// Nodes accesses the panel's node resources.
type Nodes struct {
	c *rest.Client
}

// NewNodes returns a Nodes accessor bound to the given session binding.
func NewNodes(c *rest.Client) *Nodes {
	return &Nodes{c: c}
}

// List retrieves a page of nodes.
func (n *Nodes) List(ctx context.Context, opts *ListOptions) ([]Node, *Pagination, error) {
	var env rest.List[Node]
	if err := n.c.Get(ctx, "api/application/nodes", opts.values(), &env); err != nil {
		return nil, nil, err
	}
	return rest.Items(env), paginationFrom(env.Meta), nil
}

// Get retrieves a single node by ID.
func (n *Nodes) Get(ctx context.Context, id int64) (*Node, error) {
	var env rest.Object[Node]
	if err := n.c.Get(ctx, fmt.Sprintf("api/application/nodes/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Create registers a new node with the panel.
func (n *Nodes) Create(ctx context.Context, params NodeParams) (*Node, error) {
	var env rest.Object[Node]
	if err := n.c.Post(ctx, "api/application/nodes", params, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Update modifies an existing node.
func (n *Nodes) Update(ctx context.Context, id int64, params NodeParams) (*Node, error) {
	var env rest.Object[Node]
	if err := n.c.Patch(ctx, fmt.Sprintf("api/application/nodes/%d", id), params, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Delete removes a node. The panel refuses to delete a node that still
// hosts servers.
func (n *Nodes) Delete(ctx context.Context, id int64) error {
	return n.c.Delete(ctx, fmt.Sprintf("api/application/nodes/%d", id))
}

// ListAllocations retrieves a page of allocations on a node.
func (n *Nodes) ListAllocations(ctx context.Context, nodeID int64, opts *ListOptions) ([]Allocation, *Pagination, error) {
	var env rest.List[Allocation]
	if err := n.c.Get(ctx, fmt.Sprintf("api/application/nodes/%d/allocations", nodeID), opts.values(), &env); err != nil {
		return nil, nil, err
	}
	return rest.Items(env), paginationFrom(env.Meta), nil
}

// CreateAllocations adds allocations to a node. The panel answers with 204
// and no body.
func (n *Nodes) CreateAllocations(ctx context.Context, nodeID int64, params AllocationParams) error {
	return n.c.Post(ctx, fmt.Sprintf("api/application/nodes/%d/allocations", nodeID), params, nil)
}

// DeleteAllocation removes an unassigned allocation from a node.
func (n *Nodes) DeleteAllocation(ctx context.Context, nodeID, allocationID int64) error {
	return n.c.Delete(ctx, fmt.Sprintf("api/application/nodes/%d/allocations/%d", nodeID, allocationID))
}
