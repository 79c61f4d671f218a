package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manufacturingActor(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), kernel.NewUUID(), actor.Manufacturing)
	require.NoError(t, err)
	return a
}

func clientActor(t *testing.T, organizationID kernel.UUID) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), organizationID, actor.Client)
	require.NoError(t, err)
	return a
}

func TestNewTransitionOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	requester := manufacturingActor(t)
	cmd, err := commands.NewTransitionOrderCommand(id, stage.Measurements, requester)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, stage.Measurements, cmd.TargetStage())
	assert.Equal(t, requester, cmd.RequestedBy())
	assert.Nil(t, cmd.NewShipDate())
	assert.False(t, cmd.IsCorrection())
	assert.False(t, cmd.HasAmendment())
}

func TestNewTransitionOrderCommand_Options(t *testing.T) {
	revised := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewTransitionOrderCommand(
		kernel.NewUUID(), stage.Cutting, manufacturingActor(t),
		commands.WithNewShipDate(revised, "material-delay"),
		commands.WithNotes("silk back-ordered"),
		commands.AsCorrection(),
	)
	require.NoError(t, err)
	require.NotNil(t, cmd.NewShipDate())
	assert.Equal(t, revised, *cmd.NewShipDate())
	assert.Equal(t, "material-delay", cmd.Reason())
	assert.Equal(t, "silk back-ordered", cmd.Notes())
	assert.True(t, cmd.IsCorrection())
	assert.True(t, cmd.HasAmendment())
}

func TestNewTransitionOrderCommand_NotesAreAnAmendment(t *testing.T) {
	cmd, err := commands.NewTransitionOrderCommand(
		kernel.NewUUID(), stage.Cutting, manufacturingActor(t),
		commands.WithNotes("re-checked seams"),
	)
	require.NoError(t, err)
	assert.True(t, cmd.HasAmendment())
}

func TestNewTransitionOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewTransitionOrderCommand(invalidID, stage.Measurements, manufacturingActor(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTransitionOrderCommand_InvalidStage(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), stage.Unknown, manufacturingActor(t))
	require.Error(t, err)
}

func TestNewTransitionOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.NewUUID(), stage.Measurements, actor.Actor{})
	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}

func TestNewTransitionOrderCommand_ZeroShipDate(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(
		kernel.NewUUID(), stage.Cutting, manufacturingActor(t),
		commands.WithNewShipDate(time.Time{}, "typo"),
	)
	require.Error(t, err)
}

func TestTransitionOrderCommand_ValidateUnconstructed(t *testing.T) {
	cmd := commands.TransitionOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionOrderCommandIsNotConstructed)
}
