// Package event defines the transition event emitted once per committed
// stage transition. The event is ephemeral: it exists to be delivered by the
// notification dispatcher and then discarded. The audit trail, not the
// event, is the durable record of history.
package event

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"atelier/internal/core/domain/model/history"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/stage"
)

// TransitionEvent describes one committed stage transition for downstream
// notification channels. Its ID is a deterministic hash of the order id, the
// resulting stage, and the commit timestamp, so re-delivery after a crash can
// be deduplicated without coordination.
type TransitionEvent struct {
	ID               string      `json:"eventId"`
	OrderID          string      `json:"orderId"`
	OrganizationID   string      `json:"organizationId"`
	PreviousStage    stage.Stage `json:"previousStage"`
	NewStage         stage.Stage `json:"newStage"`
	ShipDateChanged  bool        `json:"shipDateChanged"`
	PreviousShipDate *time.Time  `json:"previousShipDate,omitempty"`
	NewShipDate      *time.Time  `json:"newShipDate,omitempty"`
	Timestamp        time.Time   `json:"timestamp"`
}

// DeterministicID computes the dedup key for a transition: the hex SHA-256 of
// the order id, the resulting stage, and the commit timestamp. Identical
// inputs always produce the same id, so a replayed commit cannot enqueue a
// second distinguishable event.
func DeterministicID(orderID string, newStage stage.Stage, committedAt time.Time) string {
	h := sha256.New()
	h.Write([]byte(orderID))
	h.Write([]byte{0})
	h.Write([]byte(newStage.String()))
	h.Write([]byte{0})
	h.Write([]byte(committedAt.UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(h.Sum(nil))
}

// FromTransition builds the event for a committed transition from the updated
// order, the stage it left, and the audit record written alongside it.
func FromTransition(o *order.Order, previousStage stage.Stage, record history.Record) TransitionEvent {
	e := TransitionEvent{
		OrderID:         o.ID().String(),
		OrganizationID:  o.OrganizationID().String(),
		PreviousStage:   previousStage,
		NewStage:        o.CurrentStage(),
		ShipDateChanged: record.ShipDateChanged(),
		Timestamp:       record.EnteredAt(),
	}

	if record.ShipDateChanged() {
		e.PreviousShipDate = record.PreviousShipDate()
		e.NewShipDate = record.NewShipDate()
	}

	e.ID = DeterministicID(e.OrderID, e.NewStage, e.Timestamp)
	return e
}
