// Package history implements the append-only audit trail of the workflow.
// One Record is written per committed transition; records are never mutated
// or deleted, and taken in timestamp order they reconstruct an order's full
// stage path.
package history

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/stage"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not created
// through the NewRecord factory method.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is one immutable entry of an order's audit trail. It captures the
// stage entered, when, by whom, and, for transitions that also revised the
// ship date, the previous/new date pair with the change reason.
//
// Records are created exclusively by the transition engine at commit time.
// No other component creates or mutates them.
type Record struct {
	id           kernel.UUID
	orderID      kernel.UUID
	stage        stage.Stage
	enteredAt    time.Time
	actorID      kernel.UUID
	notes        string
	isCorrection bool

	previousShipDate *time.Time
	newShipDate      *time.Time
	changeReason     string

	guard guard.ConstructorGuard
}

// NewRecord creates an audit record for a committed transition.
// Notes are optional; the ship-date revision is attached separately with
// WithShipDateRevision.
func NewRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	s stage.Stage,
	enteredAt time.Time,
	actorID kernel.UUID,
	notes string,
	isCorrection bool,
) (Record, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		s.Validate(),
		actorID.Validate(),
	); err != nil {
		return Record{}, err
	}

	if enteredAt.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("enteredAt")
	}

	return Record{
		id:           id,
		orderID:      orderID,
		stage:        s,
		enteredAt:    enteredAt,
		actorID:      actorID,
		notes:        notes,
		isCorrection: isCorrection,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// WithShipDateRevision returns a copy of the record carrying the ship-date
// change of the transition. Both dates are mandatory; the reason code is the
// operator's stated cause (e.g. "material-delay").
func (r Record) WithShipDateRevision(previous, next time.Time, reason string) (Record, error) {
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	if previous.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("previousShipDate")
	}
	if next.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("newShipDate")
	}

	r.previousShipDate = &previous
	r.newShipDate = &next
	r.changeReason = reason
	return r, nil
}

// Validate ensures the record was created through the constructor.
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order the record belongs to.
func (r Record) OrderID() kernel.UUID {
	return r.orderID
}

// Stage returns the stage entered by the transition.
func (r Record) Stage() stage.Stage {
	return r.stage
}

// EnteredAt returns the commit timestamp of the transition.
func (r Record) EnteredAt() time.Time {
	return r.enteredAt
}

// ActorID returns the identity that requested the transition.
func (r Record) ActorID() kernel.UUID {
	return r.actorID
}

// Notes returns the free-text note attached to the transition, if any.
func (r Record) Notes() string {
	return r.notes
}

// IsCorrection reports whether the transition was an explicitly flagged
// backward move.
func (r Record) IsCorrection() bool {
	return r.isCorrection
}

// ShipDateChanged reports whether the transition also revised the ship date.
func (r Record) ShipDateChanged() bool {
	return r.previousShipDate != nil && r.newShipDate != nil
}

// PreviousShipDate returns the ship date before the revision, or nil when the
// transition carried no date change.
func (r Record) PreviousShipDate() *time.Time {
	return r.previousShipDate
}

// NewShipDate returns the ship date after the revision, or nil when the
// transition carried no date change.
func (r Record) NewShipDate() *time.Time {
	return r.newShipDate
}

// ChangeReason returns the operator's stated cause for the date change.
func (r Record) ChangeReason() string {
	return r.changeReason
}
