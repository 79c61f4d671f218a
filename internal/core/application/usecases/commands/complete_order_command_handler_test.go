package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	o := orderAtStage(t, orderID, kernel.NewUUID(), stage.Delivered)
	cmd, err := commands.NewCompleteOrderCommand(orderID, manufacturingActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockWorkflowUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotTerminalStage(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	o := orderAtStage(t, orderID, kernel.NewUUID(), stage.Shipped)
	cmd, err := commands.NewCompleteOrderCommand(orderID, manufacturingActor(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockWorkflowUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once()

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.Active, o.Status())
}

func TestCompleteOrderCommandHandler_Handle_ClientForbidden(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	orgID := kernel.NewUUID()
	o := orderAtStage(t, orderID, orgID, stage.Delivered)
	cmd, err := commands.NewCompleteOrderCommand(orderID, clientActor(t, orgID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockWorkflowUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, orderID).Return(o, nil).Once()

	factory := new(MockWorkflowUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTransitionForbidden)
}
