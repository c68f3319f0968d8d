// Package policy holds the pure authorization rules for content mutations.
// It performs no I/O: ownership decisions require the caller to have loaded
// the target entity first.
package policy

import (
	uuid "github.com/satori/go.uuid"

	"snapgram/auth"
)

type Action int

const (
	ReadContent Action = iota
	ReadSelf
	CreatePost
	CreateComment
	CreateLike
	CreateRating
	RemoveOwnLikes
	UpdatePost
	DeleteOwnPost
	DeleteOwnComment
	ModeratePost
	ModerateComment
)

type requirement int

const (
	requireNothing requirement = iota
	requireIdentity
	requireOwner
	requireAdmin
)

var requirements = map[Action]requirement{
	ReadContent:      requireNothing,
	ReadSelf:         requireIdentity,
	CreatePost:       requireIdentity,
	CreateComment:    requireIdentity,
	CreateLike:       requireIdentity,
	CreateRating:     requireIdentity,
	RemoveOwnLikes:   requireIdentity,
	UpdatePost:       requireOwner,
	DeleteOwnPost:    requireOwner,
	DeleteOwnComment: requireOwner,
	ModeratePost:     requireAdmin,
	ModerateComment:  requireAdmin,
}

// Target is the loaded entity an ownership check runs against.
type Target struct {
	AuthorID uuid.UUID
}

type Code int

const (
	// Allowed permits the action.
	Allowed Code = iota
	// DeniedAnonymous means the action needs an identity and none was given.
	DeniedAnonymous
	// Denied means an identity was given but the rules reject it.
	Denied
	// TargetMissing means an ownership check had no target to check against.
	// It is distinct from Denied so callers can report the right error kind.
	TargetMissing
)

type Decision struct {
	Code   Code
	Reason string
}

func (d Decision) Allow() bool { return d.Code == Allowed }

func allow() Decision { return Decision{Code: Allowed} }

func deny(code Code, why string) Decision { return Decision{Code: code, Reason: why} }

// Authorize decides whether identity may perform action against target.
// target may be nil for actions that do not check ownership.
func Authorize(identity *auth.Identity, action Action, target *Target) Decision {
	switch requirements[action] {
	case requireNothing:
		return allow()

	case requireIdentity:
		if identity == nil {
			return deny(DeniedAnonymous, "authentication required")
		}
		return allow()

	case requireOwner:
		if identity == nil {
			return deny(DeniedAnonymous, "authentication required")
		}
		if target == nil {
			return deny(TargetMissing, "target not found")
		}
		if !uuid.Equal(target.AuthorID, identity.ID) {
			return deny(Denied, "not the author")
		}
		return allow()

	case requireAdmin:
		if identity == nil {
			return deny(DeniedAnonymous, "authentication required")
		}
		if !identity.IsAdmin() {
			return deny(Denied, "administrator role required")
		}
		return allow()
	}
	return deny(Denied, "unknown action")
}
