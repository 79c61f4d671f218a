package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	orgID := kernel.NewUUID()
	shipDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	registrar := manufacturingActor(t)

	cmd, err := commands.NewCreateOrderCommand(id, orgID, shipDate, registrar)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, orgID, cmd.OrganizationID())
	assert.Equal(t, shipDate, cmd.ShipDate())
	assert.Equal(t, registrar, cmd.CreatedBy())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), time.Now(), manufacturingActor(t),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_ZeroShipDate(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), time.Time{}, manufacturingActor(t),
	)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), time.Now(), actor.Actor{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}

func TestCreateOrderCommand_ValidateUnconstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
