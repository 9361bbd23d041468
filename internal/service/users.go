package service

import (
	"context"
	"errors"
)

// Login implements Service.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	const op = "login"

	docs, err := c.store.Find(ctx, UsersCollection, fieldEmail, email)
	if err != nil {
		return User{}, c.fail(op, transport(op, "Login process failed due to network or server issues.", err))
	}
	if len(docs) == 0 {
		return User{}, c.fail(op, notFound(op, "User not found."))
	}

	// Email is not unique; any record with a matching password wins.
	for _, doc := range docs {
		u := userFromDocument(doc)
		if u.Password == password {
			return stripPassword(u), nil
		}
	}
	return User{}, c.fail(op, conflict(op, "Password does not match."))
}

// CreateUser implements Service.
func (c *Client) CreateUser(ctx context.Context, u NewUser) error {
	const op = "createUser"

	_, err := c.store.Insert(ctx, UsersCollection, Fields{
		fieldFirstName: u.FirstName,
		fieldLastName:  u.LastName,
		fieldEmail:     u.Email,
		fieldPassword:  u.Password,
	})
	if err != nil {
		return c.fail(op, transport(op, "Failed to create user due to network or server issues.", err))
	}
	return nil
}

// UpdateUserProfile implements Service.
func (c *Client) UpdateUserProfile(ctx context.Context, id string, patch UserPatch) (User, error) {
	const op = "updateUserProfile"
	const missing = "Failed to fetch updated user profile."
	const failed = "Update failed due to network or server issues."

	if fields := patch.Fields(); len(fields) > 0 {
		if err := c.store.Update(ctx, UsersCollection, id, fields); err != nil {
			if errors.Is(err, ErrDocumentNotFound) {
				return User{}, c.fail(op, notFound(op, missing))
			}
			return User{}, c.fail(op, transport(op, failed, err))
		}
	}

	doc, err := c.store.Get(ctx, UsersCollection, id)
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return User{}, c.fail(op, notFound(op, missing))
		}
		return User{}, c.fail(op, transport(op, failed, err))
	}
	return stripPassword(userFromDocument(doc)), nil
}
