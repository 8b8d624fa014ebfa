package api

import (
	"time"

	"laman-client/internal/domain/order"
	"laman-client/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createOrderRequest struct {
	GuestName       string            `json:"guest_name"`
	GuestPhone      string            `json:"guest_phone"`
	GuestAddress    string            `json:"guest_address"`
	DeliveryAddress string            `json:"delivery_address"`
	Comment         *string           `json:"comment,omitempty"`
	PaymentMethod   string            `json:"payment_method"`
	StoreID         uuid.UUID         `json:"store_id"`
	Items           []createOrderItem `json:"items"`
}

type createOrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

func newCreateOrderRequest(req order.CreateRequest) createOrderRequest {
	items := make([]createOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, createOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return createOrderRequest{
		GuestName:       req.GuestName,
		GuestPhone:      req.GuestPhone,
		GuestAddress:    req.GuestAddress,
		DeliveryAddress: req.DeliveryAddress,
		Comment:         req.Comment,
		PaymentMethod:   string(req.PaymentMethod),
		StoreID:         req.StoreID,
		Items:           items,
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID            uuid.UUID           `json:"id"`
	GuestName     *string             `json:"guest_name"`
	GuestPhone    *string             `json:"guest_phone"`
	GuestAddress  *string             `json:"guest_address"`
	Comment       *string             `json:"comment"`
	Status        *string             `json:"status"`
	PaymentMethod *string             `json:"payment_method"`
	ItemsTotal    *decimal.Decimal    `json:"items_total"`
	ServiceFee    *decimal.Decimal    `json:"service_fee"`
	DeliveryFee   *decimal.Decimal    `json:"delivery_fee"`
	FinalTotal    *decimal.Decimal    `json:"final_total"`
	CreatedAt     *time.Time          `json:"created_at"`
	Items         []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func (r orderResponse) toDomain() (*order.Order, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDecode)
	}

	var paymentMethod *order.PaymentMethod
	if r.PaymentMethod != nil {
		pm, err := order.ParsePaymentMethod(*r.PaymentMethod)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDecode)
		}
		paymentMethod = &pm
	}

	var items []order.Item
	for _, it := range r.Items {
		items = append(items, order.Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return &order.Order{
		ID:            r.ID,
		GuestName:     r.GuestName,
		GuestPhone:    r.GuestPhone,
		GuestAddress:  r.GuestAddress,
		Comment:       r.Comment,
		Status:        status,
		PaymentMethod: paymentMethod,
		ItemsTotal:    r.ItemsTotal,
		ServiceFee:    r.ServiceFee,
		DeliveryFee:   r.DeliveryFee,
		FinalTotal:    r.FinalTotal,
		CreatedAt:     r.CreatedAt,
		Items:         items,
	}, nil
}
