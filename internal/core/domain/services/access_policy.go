package services

import (
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/order"
)

// AccessPolicy decides whether an actor may mutate or observe an order.
//
// The write rule is intentionally simple and total: only actors of the
// manufacturing organization drive the timeline. Client-organization actors
// may never request a stage transition, whatever the stage. Clients submit
// data to other subsystems (measurements, payments) but do not move orders.
// There is no per-stage permission matrix.
type AccessPolicy struct{}

// NewAccessPolicy creates the authorization policy service.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanTransition reports whether the actor may request a stage transition on
// the order. Manufacturing actors may request any transition on any order;
// everyone else is denied.
func (AccessPolicy) CanTransition(a actor.Actor, _ *order.Order) bool {
	if a.Validate() != nil {
		return false
	}
	return a.Role() == actor.Manufacturing
}

// CanCancel reports whether the actor may cancel the order. Manufacturing
// actors may cancel any order; a client actor may cancel only the orders
// owned by their own organization.
func (AccessPolicy) CanCancel(a actor.Actor, o *order.Order) bool {
	if a.Validate() != nil || o.Validate() != nil {
		return false
	}
	if a.Role() == actor.Manufacturing {
		return true
	}
	return a.OrganizationID().IsEqual(o.OrganizationID())
}

// CanView reports whether the actor may read the order's state and history.
// Manufacturing actors see every order; a client actor sees only the orders
// owned by their own organization. The boundary is enforced here, in the
// engine's read path, never as a UI-level filter.
func (AccessPolicy) CanView(a actor.Actor, o *order.Order) bool {
	if a.Validate() != nil || o.Validate() != nil {
		return false
	}
	if a.Role() == actor.Manufacturing {
		return true
	}
	return a.OrganizationID().IsEqual(o.OrganizationID())
}
