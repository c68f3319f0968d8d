package services

import (
	"time"

	uuid "github.com/satori/go.uuid"

	"snapgram/apperr"
	"snapgram/models"
)

type SignupInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *Content) Signup(in SignupInput) (*AuthPayload, error) {
	if err := c.checkInput(in); err != nil {
		return nil, err
	}

	if _, err := c.store.UserByEmail(in.Email); err == nil {
		return nil, apperr.New(apperr.DuplicateEmail, "email already in use")
	} else if !notFoundErr(err) {
		return nil, c.internal("signup: lookup email", err)
	}
	if _, err := c.store.UserByUsername(in.Username); err == nil {
		return nil, apperr.New(apperr.DuplicateUsername, "username already in use")
	} else if !notFoundErr(err) {
		return nil, c.internal("signup: lookup username", err)
	}

	digest, err := c.hasher.Hash(in.Password)
	if err != nil {
		return nil, c.internal("signup: hash password", err)
	}

	user := &models.User{
		ID:        uuid.NewV4(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  digest,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}
	if err := c.store.CreateUser(user); err != nil {
		return nil, c.internal("signup: create user", err)
	}

	token, err := c.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, c.internal("signup: sign token", err)
	}

	c.audit.Info("User signed up: " + user.Username)
	return &AuthPayload{Token: token, User: user}, nil
}

// Login deliberately fails the same way for an unknown email and a wrong
// password so callers cannot tell which happened.
func (c *Content) Login(in LoginInput) (*AuthPayload, error) {
	if err := c.checkInput(in); err != nil {
		return nil, err
	}

	user, err := c.store.UserByEmail(in.Email)
	if notFoundErr(err) {
		return nil, apperr.New(apperr.InvalidCredentials, "invalid credentials")
	}
	if err != nil {
		return nil, c.internal("login: lookup user", err)
	}
	if !c.hasher.Verify(in.Password, user.Password) {
		return nil, apperr.New(apperr.InvalidCredentials, "invalid credentials")
	}

	token, err := c.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, c.internal("login: sign token", err)
	}

	c.audit.Info("User logged in: " + user.Username)
	return &AuthPayload{Token: token, User: user}, nil
}
