package commands

import (
	"context"

	"atelier/internal/core/domain/model/history"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// New orders start in the design proposal stage with an active status, and the
// audit trail opens with a record of that initial stage so the full stage path
// can always be reconstructed from history alone.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, SystemClock)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), orgID, shipDate, registrar)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order registration failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires a WorkflowUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory WorkflowUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order registration command.
// Persists the new order and its initial audit record in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := order.NewOrder(cmd.OrderID(), cmd.OrganizationID(), cmd.ShipDate())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	record, err := history.NewRecord(
		kernel.NewUUID(),
		o.ID(),
		o.CurrentStage(),
		h.clock(),
		cmd.CreatedBy().ID(),
		"",
		false,
	)
	if err != nil {
		return err
	}

	if err = uow.HistoryRepository().Append(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
