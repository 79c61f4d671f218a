package event_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/event"
	"atelier/internal/core/domain/model/history"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicID(t *testing.T) {
	ts := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)

	t.Run("same_inputs_same_id", func(t *testing.T) {
		a := event.DeterministicID("order-1", stage.Measurements, ts)
		b := event.DeterministicID("order-1", stage.Measurements, ts)

		assert.Equal(t, a, b)
		assert.Len(t, a, 64)
	})

	t.Run("any_changed_input_changes_id", func(t *testing.T) {
		base := event.DeterministicID("order-1", stage.Measurements, ts)

		assert.NotEqual(t, base, event.DeterministicID("order-2", stage.Measurements, ts))
		assert.NotEqual(t, base, event.DeterministicID("order-1", stage.Cutting, ts))
		assert.NotEqual(t, base, event.DeterministicID("order-1", stage.Measurements, ts.Add(time.Nanosecond)))
	})

	t.Run("timestamp_is_normalized_to_utc", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		assert.Equal(t,
			event.DeterministicID("order-1", stage.Measurements, ts),
			event.DeterministicID("order-1", stage.Measurements, ts.In(loc)),
		)
	})
}

func TestFromTransition(t *testing.T) {
	shipDate := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	committedAt := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), shipDate)
		require.NoError(t, err)
		return o
	}

	t.Run("carries_stage_delta_without_date_change", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.TransitionTo(stage.Measurements, false, false))

		rec, err := history.NewRecord(
			kernel.NewUUID(), o.ID(), o.CurrentStage(), committedAt, kernel.NewUUID(), "", false)
		require.NoError(t, err)

		e := event.FromTransition(o, stage.DesignProposal, rec)

		assert.Equal(t, o.ID().String(), e.OrderID)
		assert.Equal(t, o.OrganizationID().String(), e.OrganizationID)
		assert.Equal(t, stage.DesignProposal, e.PreviousStage)
		assert.Equal(t, stage.Measurements, e.NewStage)
		assert.False(t, e.ShipDateChanged)
		assert.Nil(t, e.PreviousShipDate)
		assert.Nil(t, e.NewShipDate)
		assert.Equal(t, event.DeterministicID(e.OrderID, e.NewStage, committedAt), e.ID)
	})

	t.Run("carries_ship_date_delta_when_revised", func(t *testing.T) {
		o := newOrder(t)
		revised := shipDate.AddDate(0, 0, 14)
		require.NoError(t, o.TransitionTo(stage.ProductionPlanning, false, false))
		require.NoError(t, o.ReviseShipDate(revised))

		rec, err := history.NewRecord(
			kernel.NewUUID(), o.ID(), o.CurrentStage(), committedAt, kernel.NewUUID(), "", false)
		require.NoError(t, err)
		rec, err = rec.WithShipDateRevision(shipDate, revised, "material-delay")
		require.NoError(t, err)

		e := event.FromTransition(o, stage.DesignProposal, rec)

		assert.True(t, e.ShipDateChanged)
		require.NotNil(t, e.PreviousShipDate)
		require.NotNil(t, e.NewShipDate)
		assert.Equal(t, shipDate, *e.PreviousShipDate)
		assert.Equal(t, revised, *e.NewShipDate)
	})
}
