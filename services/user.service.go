package services

import (
	uuid "github.com/satori/go.uuid"

	"snapgram/apperr"
	"snapgram/auth"
	"snapgram/models"
	"snapgram/policy"
)

func (c *Content) Me(ident *auth.Identity) (*models.User, error) {
	if d := policy.Authorize(ident, policy.ReadSelf, nil); !d.Allow() {
		return nil, decisionErr(d, "user")
	}
	user, err := c.store.UserByID(ident.ID)
	if notFoundErr(err) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return nil, c.internal("me: load user", err)
	}
	return user, nil
}

func (c *Content) Users() ([]models.User, error) {
	users, err := c.store.Users()
	if err != nil {
		return nil, c.internal("users: list", err)
	}
	return users, nil
}

func (c *Content) User(id uuid.UUID) (*models.User, error) {
	user, err := c.store.UserByID(id)
	if notFoundErr(err) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return nil, c.internal("user: load", err)
	}
	return user, nil
}
