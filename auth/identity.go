package auth

import (
	"strings"

	uuid "github.com/satori/go.uuid"

	"snapgram/models"
)

// Identity is the authenticated caller as embedded in the credential. It is
// trusted verbatim: the store is not consulted, so a deleted or role-changed
// user keeps this identity until the token expires.
type Identity struct {
	ID   uuid.UUID
	Role models.Role
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == models.RoleAdmin
}

// Tokens is the token capability consumed by the resolver and by the
// signup/login operations.
type Tokens interface {
	Sign(id uuid.UUID, role models.Role) (string, error)
	Verify(token string) (*Identity, error)
}

// Resolver turns a bearer credential into an identity.
type Resolver struct {
	Tokens Tokens
}

// Resolve maps an Authorization header value to an identity. No header means
// an anonymous caller, which is not an error. A malformed or expired token is
// an InvalidToken failure; callers must not treat it as anonymous.
func (r *Resolver) Resolve(header string) (*Identity, error) {
	if header == "" {
		return nil, nil
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return r.Tokens.Verify(token)
}
