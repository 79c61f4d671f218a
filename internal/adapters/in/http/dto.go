package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrganizationID string    `json:"organizationId"`
	ShipDate       time.Time `json:"shipDate"`
}

// CreateOrderResponse returns the identifier assigned to the new order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// TransitionRequest is the body of POST /api/v1/orders/:orderId/transitions.
// NewShipDate and Reason travel together; Notes and IsCorrection are
// independent of each other.
type TransitionRequest struct {
	TargetStage  string     `json:"targetStage"`
	NewShipDate  *time.Time `json:"newShipDate,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	IsCorrection bool       `json:"isCorrection,omitempty"`
}

// TransitionResponse reflects the committed transition back to the caller.
type TransitionResponse struct {
	OrderID         string     `json:"orderId"`
	PreviousStage   string     `json:"previousStage"`
	CurrentStage    string     `json:"currentStage"`
	CurrentShipDate time.Time  `json:"currentShipDate"`
	EnteredAt       time.Time  `json:"enteredAt"`
	ShipDateChanged bool       `json:"shipDateChanged"`
	NewShipDate     *time.Time `json:"newShipDate,omitempty"`
}

// OrderResponse is the body of GET /api/v1/orders/:orderId.
type OrderResponse struct {
	OrderID          string    `json:"orderId"`
	OrganizationID   string    `json:"organizationId"`
	CurrentStage     string    `json:"currentStage"`
	OriginalShipDate time.Time `json:"originalShipDate"`
	CurrentShipDate  time.Time `json:"currentShipDate"`
	Status           string    `json:"status"`
	Version          int64     `json:"version"`
}

// HistoryEntry is one element of GET /api/v1/orders/:orderId/history.
type HistoryEntry struct {
	Stage            string     `json:"stage"`
	EnteredAt        time.Time  `json:"enteredAt"`
	ActorID          string     `json:"actorId"`
	Notes            string     `json:"notes,omitempty"`
	IsCorrection     bool       `json:"isCorrection"`
	PreviousShipDate *time.Time `json:"previousShipDate,omitempty"`
	NewShipDate      *time.Time `json:"newShipDate,omitempty"`
	ChangeReason     string     `json:"changeReason,omitempty"`
}
