// Package services provides domain services that implement business rules
// spanning more than one aggregate in the workflow system.
//
// The package includes:
//   - AccessPolicy: the authorization rules deciding which actors may drive
//     an order's timeline and which may only observe it
//
// Domain services are stateless and side-effect free; they are consumed by
// the application layer's command and query handlers.
package services
