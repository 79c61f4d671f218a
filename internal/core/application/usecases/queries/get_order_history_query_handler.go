package queries

import (
	"context"
	"database/sql"
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/stage"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's audit trail from the database.
// The ownership check runs against the orders table first, so an actor who may
// not see the order never sees its history either.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for audit trail reads.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the history read. Entries come back ordered by the time each
// stage was entered, oldest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorize(ctx, query); err != nil {
		return nil, err
	}

	records := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			stage,
			entered_at,
			actor_id,
			notes,
			is_correction,
			previous_ship_date,
			new_ship_date,
			change_reason
		FROM stage_history
		WHERE order_id = ?
		ORDER BY entered_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetOrderHistoryQueryResponse
		var stageCode int
		var actorID uuid.UUID

		err = rows.Scan(
			&stageCode,
			&record.EnteredAt,
			&actorID,
			&record.Notes,
			&record.IsCorrection,
			&record.PreviousShipDate,
			&record.NewShipDate,
			&record.ChangeReason,
		)
		if err != nil {
			return nil, err
		}

		record.Stage = stage.Stage(stageCode).String()

		id, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ActorID = id

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// authorize resolves the owning organization of the order and applies the
// view scope for client actors.
func (h GetOrderHistoryQueryHandler) authorize(ctx context.Context, query GetOrderHistoryQuery) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT organization_id FROM orders WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var organizationID uuid.UUID
	err := row.Scan(&organizationID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return err
	}

	orgID, err := kernel.UUIDFromBytes(organizationID[:])
	if err != nil {
		return err
	}

	requester := query.RequestedBy()
	if requester.Role() != actor.Manufacturing && !requester.OrganizationID().IsEqual(orgID) {
		return ErrViewForbidden
	}

	return nil
}
