// Package services implements the content operations: one method per API
// operation, each following the same template. Load the named target, consult
// the authorization policy, validate input, mutate the store in dependency
// order, emit an audit event, and return the freshly re-read result.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"snapgram/apperr"
	"snapgram/audit"
	"snapgram/auth"
	"snapgram/policy"
	"snapgram/store"
)

type Content struct {
	store    store.Store
	hasher   auth.Hasher
	tokens   auth.Tokens
	audit    audit.Sink
	validate *validator.Validate
}

func New(st store.Store, hasher auth.Hasher, tokens auth.Tokens, sink audit.Sink) *Content {
	return &Content{
		store:    st,
		hasher:   hasher,
		tokens:   tokens,
		audit:    sink,
		validate: validator.New(),
	}
}

// internal logs an unexpected failure through the audit sink and hides the
// detail from the caller.
func (c *Content) internal(op string, err error) error {
	c.audit.Error(fmt.Sprintf("%s: %v", op, err))
	return apperr.Wrap(apperr.Internal, "internal server error", err)
}

// decisionErr translates a policy decision into the matching error kind.
func decisionErr(d policy.Decision, entity string) error {
	switch d.Code {
	case policy.DeniedAnonymous:
		return apperr.New(apperr.Unauthenticated, "not authenticated")
	case policy.TargetMissing:
		return apperr.New(apperr.NotFound, entity+" not found")
	default:
		return apperr.New(apperr.Unauthorized, "not authorized: "+d.Reason)
	}
}

func (c *Content) checkInput(in interface{}) error {
	err := c.validate.Struct(in)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		field := strings.ToLower(errs[0].Field())
		return apperr.New(apperr.InvalidArgument, fmt.Sprintf("%s is missing or invalid", field))
	}
	return apperr.New(apperr.InvalidArgument, "invalid input")
}

func notFoundErr(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
