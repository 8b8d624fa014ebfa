//go:build unit

package builder

import (
	"time"

	"laman-client/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID            uuid.UUID
	GuestName     string
	GuestPhone    string
	GuestAddress  string
	Status        order.Status
	PaymentMethod order.PaymentMethod
	ItemsTotal    decimal.Decimal
	CreatedAt     time.Time
	Items         []order.Item
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.New(),
		GuestName:     "Test Guest",
		GuestPhone:    "+70000000000",
		GuestAddress:  "Test Street 1",
		Status:        order.StatusNew,
		PaymentMethod: order.PaymentCash,
		ItemsTotal:    decimal.NewFromInt(250),
		CreatedAt:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Items: []order.Item{
			{ProductID: uuid.New(), Quantity: 2, Price: decimal.NewFromInt(100)},
			{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(50)},
		},
	}
}

func (b *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	b.Status = status
	return b
}

func (b *OrderBuilder) Build() order.Order {
	name := b.GuestName
	phone := b.GuestPhone
	address := b.GuestAddress
	pm := b.PaymentMethod
	itemsTotal := b.ItemsTotal
	serviceFee := itemsTotal.Mul(decimal.NewFromFloat(0.05))
	deliveryFee := decimal.NewFromInt(200)
	finalTotal := itemsTotal.Add(serviceFee).Add(deliveryFee)
	createdAt := b.CreatedAt
	return order.Order{
		ID:            b.ID,
		GuestName:     &name,
		GuestPhone:    &phone,
		GuestAddress:  &address,
		Status:        b.Status,
		PaymentMethod: &pm,
		ItemsTotal:    &itemsTotal,
		ServiceFee:    &serviceFee,
		DeliveryFee:   &deliveryFee,
		FinalTotal:    &finalTotal,
		CreatedAt:     &createdAt,
		Items:         append([]order.Item(nil), b.Items...),
	}
}
