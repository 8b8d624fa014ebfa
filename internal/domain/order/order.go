package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Status lifecycle is server-owned; the client only validates membership in
// the closed set and the cancellable rule.
type Status string

const (
	StatusNew               Status = "NEW"
	StatusNeedsConfirmation Status = "NEEDS_CONFIRMATION"
	StatusConfirmed         Status = "CONFIRMED"
	StatusInProgress        Status = "IN_PROGRESS"
	StatusDelivered         Status = "DELIVERED"
	StatusCancelled         Status = "CANCELLED"
)

// ParseStatus maps an absent status to StatusNew.
func ParseStatus(s *string) (Status, error) {
	if s == nil || *s == "" {
		return StatusNew, nil
	}
	st := Status(*s)
	switch st {
	case StatusNew, StatusNeedsConfirmation, StatusConfirmed,
		StatusInProgress, StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", ErrInvalidStatus
}

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	pm := PaymentMethod(s)
	switch pm {
	case PaymentCash, PaymentTransfer:
		return pm, nil
	}
	return "", ErrInvalidPaymentMethod
}

type Order struct {
	ID            uuid.UUID
	GuestName     *string
	GuestPhone    *string
	GuestAddress  *string
	Comment       *string
	Status        Status
	PaymentMethod *PaymentMethod
	ItemsTotal    *decimal.Decimal
	ServiceFee    *decimal.Decimal
	DeliveryFee   *decimal.Decimal
	FinalTotal    *decimal.Decimal
	CreatedAt     *time.Time
	Items         []Item
}

// Item is one ordered line; Price is the unit price at order time.
type Item struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

// IsCancellable reports whether the presenting layer may offer cancellation.
func (o Order) IsCancellable() bool {
	return o.Status != StatusDelivered && o.Status != StatusCancelled
}

// CreateRequest is what the client sends; prices are computed server-side.
type CreateRequest struct {
	GuestName       string
	GuestPhone      string
	GuestAddress    string
	DeliveryAddress string
	Comment         *string
	PaymentMethod   PaymentMethod
	StoreID         uuid.UUID
	Items           []CreateItem
}

type CreateItem struct {
	ProductID uuid.UUID
	Quantity  int
}
