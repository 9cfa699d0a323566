package application

import (
	"context"
	"fmt"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// Users accesses the panel's user accounts.
type Users struct {
	c *rest.Client
}

// NewUsers returns a Users accessor bound to the given session binding.
func NewUsers(c *rest.Client) *Users {
	return &Users{c: c}
}

// List retrieves a page of users.
func (u *Users) List(ctx context.Context, opts *ListOptions) ([]User, *Pagination, error) {
	var env rest.List[User]
	if err := u.c.Get(ctx, "api/application/users", opts.values(), &env); err != nil {
		return nil, nil, err
	}
	return rest.Items(env), paginationFrom(env.Meta), nil
}

// Get retrieves a single user by ID.
func (u *Users) Get(ctx context.Context, id int64) (*User, error) {
	var env rest.Object[User]
	if err := u.c.Get(ctx, fmt.Sprintf("api/application/users/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// GetExternal retrieves a single user by external ID.
func (u *Users) GetExternal(ctx context.Context, externalID string) (*User, error) {
	var env rest.Object[User]
	if err := u.c.Get(ctx, "api/application/users/external/"+externalID, nil, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Create adds a new user account. When no password is supplied the panel
// emails the user a link to set one.
func (u *Users) Create(ctx context.Context, params UserParams) (*User, error) {
	var env rest.Object[User]
	if err := u.c.Post(ctx, "api/application/users", params, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Update modifies an existing user account.
func (u *Users) Update(ctx context.Context, id int64, params UserParams) (*User, error) {
	var env rest.Object[User]
	if err := u.c.Patch(ctx, fmt.Sprintf("api/application/users/%d", id), params, &env); err != nil {
		return nil, err
	}
	return &env.Attributes, nil
}

// Delete removes a user account. The panel refuses to delete an account
// that still owns servers.
func (u *Users) Delete(ctx context.Context, id int64) error {
	return u.c.Delete(ctx, fmt.Sprintf("api/application/users/%d", id))
}
