package queries

import (
	"context"
	"database/sql"
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/stage"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderStateQueryHandler reads one order's current state from the database.
// The ownership boundary is enforced here: a client actor never learns more
// than "not found or not yours" about a foreign order's existence checks, and
// a row their organization does not own yields ErrViewForbidden.
type GetOrderStateQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStateQueryHandler creates a handler for order state reads.
// Requires a GORM database connection for query execution.
func NewGetOrderStateQueryHandler(db *gorm.DB) GetOrderStateQueryHandler {
	return GetOrderStateQueryHandler{db: db}
}

// Handle executes the state read. Returns an error unwrapping to
// errs.ErrObjectNotFound for an unknown order and ErrViewForbidden when the
// actor's organization does not own the order.
func (h GetOrderStateQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStateQuery,
) (GetOrderStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStateQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			organization_id,
			current_stage,
			original_ship_date,
			current_ship_date,
			status,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderStateQueryResponse
	var id, organizationID uuid.UUID
	var currentStage, status int

	err := row.Scan(
		&id,
		&organizationID,
		&currentStage,
		&resp.OriginalShipDate,
		&resp.CurrentShipDate,
		&status,
		&resp.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderStateQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderStateQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderStateQueryResponse{}, err
	}
	orgID, err := kernel.UUIDFromBytes(organizationID[:])
	if err != nil {
		return GetOrderStateQueryResponse{}, err
	}

	requester := query.RequestedBy()
	if requester.Role() != actor.Manufacturing && !requester.OrganizationID().IsEqual(orgID) {
		return GetOrderStateQueryResponse{}, ErrViewForbidden
	}

	resp.ID = orderID
	resp.OrganizationID = orgID
	resp.CurrentStage = stage.Stage(currentStage).String()
	resp.Status = order.Status(status).String()

	return resp, nil
}
