package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"
)

// ErrCancelForbidden is returned when the requesting actor may not cancel the
// order.
var ErrCancelForbidden = errors.New("actor is not allowed to cancel this order")

// CancelOrderCommandHandler closes an active order. A cancelled order keeps
// its stage and history but rejects every further transition.
type CancelOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	policy     services.AccessPolicy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory WorkflowUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the cancellation command. Like the transition engine it
// retries a stale read against fresh state before surfacing the conflict.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

func (h CancelOrderCommandHandler) execute(ctx context.Context, cmd CancelOrderCommand) error {
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

	if !h.policy.CanCancel(cmd.RequestedBy(), o) {
		return ErrCancelForbidden
	}

	if err = o.Cancel(); err != nil {
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
