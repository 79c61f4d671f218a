// Package actor models the identity context carried by every engine call.
// The surrounding request layer resolves authentication tokens into an Actor;
// the engine only ever sees this explicit value, never ambient session state.
package actor

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role classifies which side of the workflow an actor belongs to.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Manufacturing marks staff of the manufacturing organization.
	// Only manufacturing actors drive the order timeline.
	Manufacturing

	// Client marks members of a client organization. Clients are read-only
	// with respect to stage transitions.
	Client
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:   "Unknown",
		Manufacturing: "Manufacturing",
		Client:        "Client",
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != Manufacturing && r != Client {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString resolves a role by its string representation.
func RoleFromString(name string) (Role, error) {
	switch name {
	case "Manufacturing":
		return Manufacturing, nil
	case "Client":
		return Client, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%q is not a valid role name", name),
		)
	}
}

// Actor is the identity making a request: who they are, which organization
// they belong to, and which role they act in. Actor is an immutable value
// object; it carries no permissions itself. The AccessPolicy domain service
// decides what an actor may do.
type Actor struct {
	id             kernel.UUID
	organizationID kernel.UUID
	role           Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor with validation.
// All three attributes are mandatory.
func NewActor(id kernel.UUID, organizationID kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:             id,
		organizationID: organizationID,
		role:           role,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// OrganizationID returns the organization the actor belongs to.
func (a Actor) OrganizationID() kernel.UUID {
	return a.organizationID
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}
