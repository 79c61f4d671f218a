package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/event"
	"atelier/internal/core/domain/model/history"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"
)

// ErrTransitionForbidden is returned when the requesting actor is not allowed
// to drive the order's timeline.
var ErrTransitionForbidden = errors.New("actor is not allowed to request stage transitions")

// maxTransitionAttempts bounds the conflict retry loop. Each attempt re-reads
// the order, so a retry always validates against fresh state.
const maxTransitionAttempts = 3

// TransitionResult carries the outcome of a committed transition: the order
// snapshot after the commit, the audit record written alongside it, and the
// event enqueued for the notification dispatcher.
type TransitionResult struct {
	Order  *order.Order
	Record history.Record
	Event  event.TransitionEvent
}

// TransitionOrderCommandHandler is the stage transition engine. It validates
// a requested transition against the stage catalog and the order's current
// state, enforces the authorization policy, and commits the stage change, the
// audit record, and the outbound event in a single transaction.
//
// Concurrent transitions on the same order are serialized optimistically: the
// conditional order update detects a stale read, and the handler retries with
// a fresh read up to maxTransitionAttempts before surfacing the conflict.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, SystemClock)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, ErrTransitionForbidden):
//	    // actor may not drive the timeline
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // unflagged backward move
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // lost the race after all retries
//	case err != nil:
//	    // storage failure
//	default:
//	    publish(result.Event)
//	}
type TransitionOrderCommandHandler struct {
	uowFactory WorkflowUoWFactory
	policy     services.AccessPolicy
	clock      Clock
}

// NewTransitionOrderCommandHandler creates the transition engine.
// Requires a WorkflowUoWFactory for transactional persistence and a Clock for
// commit timestamps.
func NewTransitionOrderCommandHandler(uowFactory WorkflowUoWFactory, clock Clock) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		clock:      clock,
	}
}

// Handle processes the transition request.
//
// Validation failures (unknown order, closed order, authorization denial,
// catalog rule violations) are reported synchronously and never retried: they
// are caller mistakes, not transient conditions. Only the optimistic-lock
// conflict is retried, with the order re-read each attempt; when the retry
// budget is exhausted the conflict surfaces to the caller.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		result, err := h.execute(ctx, cmd)
		if err != nil && errors.Is(err, errs.ErrConcurrencyConflict) {
			lastErr = err
			continue
		}
		return result, err
	}

	return TransitionResult{}, lastErr
}

// execute runs one transition attempt end to end inside its own unit of work.
func (h TransitionOrderCommandHandler) execute(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (TransitionResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	if o.Status().IsClosed() {
		return TransitionResult{}, order.ErrOrderClosed
	}

	if !h.policy.CanTransition(cmd.RequestedBy(), o) {
		return TransitionResult{}, ErrTransitionForbidden
	}

	previousStage := o.CurrentStage()
	previousShipDate := o.CurrentShipDate()

	if err = o.TransitionTo(cmd.TargetStage(), cmd.IsCorrection(), cmd.HasAmendment()); err != nil {
		return TransitionResult{}, err
	}

	committedAt := h.clock()

	record, err := history.NewRecord(
		kernel.NewUUID(),
		o.ID(),
		o.CurrentStage(),
		committedAt,
		cmd.RequestedBy().ID(),
		cmd.Notes(),
		cmd.IsCorrection(),
	)
	if err != nil {
		return TransitionResult{}, err
	}

	if newDate := cmd.NewShipDate(); newDate != nil {
		if err = o.ReviseShipDate(*newDate); err != nil {
			return TransitionResult{}, err
		}

		record, err = record.WithShipDateRevision(previousShipDate, *newDate, cmd.Reason())
		if err != nil {
			return TransitionResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.HistoryRepository().Append(ctx, record); err != nil {
		return TransitionResult{}, err
	}

	transitionEvent := event.FromTransition(o, previousStage, record)
	if err = uow.OutboxRepository().Enqueue(ctx, transitionEvent); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		Order:  o,
		Record: record,
		Event:  transitionEvent,
	}, nil
}
