// Package http exposes the workflow engine over HTTP. Handlers translate
// between the JSON surface and application commands/queries; they hold no
// business rules of their own.
package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/stage"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Actor context headers, set by the authenticating proxy in front of the
// service.
const (
	HeaderActorID        = "X-Actor-Id"
	HeaderOrganizationID = "X-Organization-Id"
	HeaderActorRole      = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler

	getOrderStateHandler   queries.GetOrderStateQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getOrderStateHandler queries.GetOrderStateQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		completeOrderHandler:   completeOrderHandler,
		getOrderStateHandler:   getOrderStateHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderId/transitions", s.TransitionOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/history", s.GetOrderHistory)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requester, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	organizationID, err := kernel.UUIDFromString(req.OrganizationID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, organizationID, req.ShipDate, requester)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// TransitionOrder handles POST /api/v1/orders/:orderId/transitions.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	requester, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	targetStage, err := stage.FromString(req.TargetStage)
	if err != nil {
		return badRequest(ctx, err)
	}

	opts := make([]commands.TransitionOption, 0, 3)
	if req.NewShipDate != nil {
		opts = append(opts, commands.WithNewShipDate(*req.NewShipDate, req.Reason))
	}
	if req.Notes != "" {
		opts = append(opts, commands.WithNotes(req.Notes))
	}
	if req.IsCorrection {
		opts = append(opts, commands.AsCorrection())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, targetStage, requester, opts...)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		OrderID:         result.Order.ID().String(),
		PreviousStage:   result.Event.PreviousStage.String(),
		CurrentStage:    result.Order.CurrentStage().String(),
		CurrentShipDate: result.Order.CurrentShipDate(),
		EnteredAt:       result.Record.EnteredAt(),
		ShipDateChanged: result.Record.ShipDateChanged(),
		NewShipDate:     result.Record.NewShipDate(),
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	requester, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, requester)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	requester, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, requester)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	requester, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderStateQuery(orderID, requester)
	if err != nil {
		return badRequest(ctx, err)
	}

	state, err := s.getOrderStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		OrderID:          state.ID.String(),
		OrganizationID:   state.OrganizationID.String(),
		CurrentStage:     state.CurrentStage,
		OriginalShipDate: state.OriginalShipDate,
		CurrentShipDate:  state.CurrentShipDate,
		Status:           state.Status,
		Version:          state.Version,
	})
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	requester, err := actorFromHeaders(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, requester)
	if err != nil {
		return badRequest(ctx, err)
	}

	records, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]HistoryEntry, len(records))
	for i, record := range records {
		response[i] = HistoryEntry{
			Stage:            record.Stage,
			EnteredAt:        record.EnteredAt,
			ActorID:          record.ActorID.String(),
			Notes:            record.Notes,
			IsCorrection:     record.IsCorrection,
			PreviousShipDate: record.PreviousShipDate,
			NewShipDate:      record.NewShipDate,
			ChangeReason:     record.ChangeReason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromHeaders reconstructs the request's actor context from the headers
// the auth layer injects.
func actorFromHeaders(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		return actor.Actor{}, errors.New("missing or invalid " + HeaderActorID + " header")
	}

	organizationID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderOrganizationID))
	if err != nil {
		return actor.Actor{}, errors.New("missing or invalid " + HeaderOrganizationID + " header")
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return actor.Actor{}, errors.New("missing or invalid " + HeaderActorRole + " header")
	}

	return actor.NewActor(id, organizationID, role)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// writeError maps application errors to HTTP statuses.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrOrderClosed),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrTransitionForbidden),
		errors.Is(err, commands.ErrCancelForbidden),
		errors.Is(err, queries.ErrViewForbidden):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrNoOpTransition),
		errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
