package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"
)

// CompleteOrderCommandHandler closes an order that reached the terminal
// stage. Completion is a timeline operation, so the transition policy
// applies: only manufacturing actors may complete an order.
type CompleteOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	policy     services.AccessPolicy
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory WorkflowUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the completion command, retrying stale reads the same way
// the transition engine does.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		err := h.execute(ctx, cmd)
		if err != nil && errors.Is(err, errs.ErrConcurrencyConflict) {
			lastErr = err
			continue
		}
		return err
	}

	return lastErr
}

func (h CompleteOrderCommandHandler) execute(ctx context.Context, cmd CompleteOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !h.policy.CanTransition(cmd.RequestedBy(), o) {
		return ErrTransitionForbidden
	}

	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
