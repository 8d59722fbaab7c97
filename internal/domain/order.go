package domain

import (
	"errors"
	"slices"
	"time"
)

// OrderStatus represents where a checkout attempt is in its lifecycle
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
	OrderFailed  OrderStatus = "failed"
)

type Order struct {
	ID             string
	GalleryID      string
	ClientID       string
	PhotographerID string
	Total          Money
	SessionID      string
	Status         OrderStatus

	// AdditionalCount is how many additional photos the order pays for.
	AdditionalCount int

	GatewayToken   *string
	GatewayOrderID *int64
	FailureReason  *string

	CreatedAt time.Time
	UpdatedAt time.Time
	PaidAt    *time.Time
}

func NewOrder(id string, gallery *Gallery, totals Totals, sessionID string) (*Order, error) {
	if id == "" {
		return nil, errors.New("order ID is required")
	}
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}
	if totals.TotalCost.Amount <= 0 || totals.AdditionalCount <= 0 {
		return nil, NewInvalidAmountError(totals.TotalCost.Decimal())
	}

	now := time.Now().UTC()
	return &Order{
		ID:              id,
		GalleryID:       gallery.ID,
		ClientID:        gallery.ClientID,
		PhotographerID:  gallery.PhotographerID,
		Total:           totals.TotalCost,
		AdditionalCount: totals.AdditionalCount,
		SessionID:       sessionID,
		Status:          OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (o *Order) MarkPaid(gatewayOrderID int64, paidAt time.Time) error {
	if err := o.transition(OrderPaid); err != nil {
		return err
	}
	o.GatewayOrderID = &gatewayOrderID
	o.PaidAt = &paidAt
	o.UpdatedAt = paidAt
	return nil
}

func (o *Order) MarkFailed(reason string) error {
	if err := o.transition(OrderFailed); err != nil {
		return err
	}
	o.FailureReason = &reason
	o.UpdatedAt = time.Now().UTC()
	return nil
}

func (o *Order) transition(target OrderStatus) error {
	if err := o.CanTransitionTo(target); err != nil {
		return err
	}
	o.Status = target
	return nil
}

// CanTransitionTo allows only pending to paid or failed.
func (o *Order) CanTransitionTo(target OrderStatus) error {
	if o.Status == OrderPending && slices.Contains([]OrderStatus{OrderPaid, OrderFailed}, target) {
		return nil
	}
	return NewInvalidTransitionError(o.Status, target)
}

func (o *Order) IsTerminal() bool {
	return o.Status == OrderPaid || o.Status == OrderFailed
}

// PaidAdditionalCount sums the additional photos already paid for.
func PaidAdditionalCount(orders []*Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == OrderPaid {
			n += o.AdditionalCount
		}
	}
	return n
}

// OpenOrder returns the pending order among orders, if any.
func OpenOrder(orders []*Order) *Order {
	for _, o := range orders {
		if o.Status == OrderPending {
			return o
		}
	}
	return nil
}
