package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Active ──┬──> Completed
//	         └──> Cancelled
//
// Completed and Cancelled are final states; an order in either accepts no
// further stage transitions, ship-date revisions, or lifecycle changes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status when an order is first created.
	// Only active orders accept stage transitions.
	Active

	// Completed indicates the order finished the full pipeline.
	Completed

	// Cancelled indicates the order was withdrawn before completion.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Active:    "Active",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Active, Completed, Cancelled.
func (s Status) Validate() error {
	if s != Active && s != Completed && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsClosed reports whether the status is a final state.
// Closed orders accept no further mutations of any kind.
func (s Status) IsClosed() bool {
	return s == Completed || s == Cancelled
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed
//
// Returns (0, error) if the order is not Active.
func (s Status) Complete() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Active -> Cancelled
//
// Returns (0, error) if the order is not Active.
func (s Status) Cancel() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
