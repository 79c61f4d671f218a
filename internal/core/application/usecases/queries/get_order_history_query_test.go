package queries_test

import (
	"testing"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderHistoryQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	a := requester(t, actor.Client)
	query, err := queries.NewGetOrderHistoryQuery(id, a)
	require.NoError(t, err)
	assert.Equal(t, id, query.OrderID())
	assert.Equal(t, a, query.RequestedBy())
	require.NoError(t, query.Validate())
}

func TestNewGetOrderHistoryQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderHistoryQuery(kernel.UUID{}, requester(t, actor.Manufacturing))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderHistoryQuery_ValidateUnconstructed(t *testing.T) {
	query := queries.GetOrderHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}
