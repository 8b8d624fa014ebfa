package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"laman-client/internal/domain/order"
	"laman-client/internal/pkg/errs"
	"laman-client/internal/pkg/watch"

	"github.com/jinzhu/copier"
)

// OrderForm carries what the guest typed on the checkout screen.
type OrderForm struct {
	GuestName       string
	GuestPhone      string
	GuestAddress    string
	DeliveryAddress string
	Comment         string
	PaymentMethod   order.PaymentMethod
}

// Validate is the presenter-side precondition check: name, phone and delivery
// address must be non-blank after trimming. The workflow itself only
// re-asserts a non-empty cart.
func (f OrderForm) Validate() error {
	if strings.TrimSpace(f.GuestName) == "" {
		return errs.ErrBlankGuestName
	}
	if strings.TrimSpace(f.GuestPhone) == "" {
		return errs.ErrBlankGuestPhone
	}
	if strings.TrimSpace(f.DeliveryAddress) == "" {
		return errs.ErrBlankDeliveryAddr
	}
	return nil
}

// OrderWorkflow submits orders built from cart state and owns the local order
// history: newest first, prepend on create, in-place status update on
// cancellation, never deleted.
type OrderWorkflow struct {
	cart     *CartEngine
	gateway  OrderGateway
	log      *slog.Logger
	notifier *watch.Notifier

	mu      sync.Mutex
	orders  []order.Order
	lastErr error
}

func NewOrderWorkflow(cart *CartEngine, gateway OrderGateway, log *slog.Logger) *OrderWorkflow {
	return &OrderWorkflow{
		cart:     cart,
		gateway:  gateway,
		log:      log,
		notifier: watch.NewNotifier(),
	}
}

// SubmitOrder builds the request from the resolved cart and the form, sends
// it, and on success prepends the returned order to history and clears the
// cart. On failure nothing changes. Lines carry product ID and quantity only;
// prices are computed server-side.
func (w *OrderWorkflow) SubmitOrder(ctx context.Context, form OrderForm) (*order.Order, error) {
	items := w.cart.Items()
	if len(items) == 0 {
		return nil, errs.ErrEmptyCart
	}
	activeStore := w.cart.ActiveStore()
	if activeStore == nil {
		return nil, errs.ErrEmptyCart
	}

	guestAddress := strings.TrimSpace(form.GuestAddress)
	if guestAddress == "" {
		// No separate guest address entered: deliver-to doubles as it.
		guestAddress = strings.TrimSpace(form.DeliveryAddress)
	}
	var comment *string
	if c := strings.TrimSpace(form.Comment); c != "" {
		comment = &c
	}

	req := order.CreateRequest{
		GuestName:       strings.TrimSpace(form.GuestName),
		GuestPhone:      strings.TrimSpace(form.GuestPhone),
		GuestAddress:    guestAddress,
		DeliveryAddress: strings.TrimSpace(form.DeliveryAddress),
		Comment:         comment,
		PaymentMethod:   form.PaymentMethod,
		StoreID:         *activeStore,
		Items:           make([]order.CreateItem, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, order.CreateItem{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
		})
	}

	created, err := w.gateway.CreateOrder(ctx, req)
	if err != nil {
		w.mu.Lock()
		w.lastErr = err
		w.mu.Unlock()
		w.log.Warn("order submission failed", slog.String("error", err.Error()))
		w.notifier.Notify()
		return nil, err
	}

	w.mu.Lock()
	w.orders = append([]order.Order{*created}, w.orders...)
	w.lastErr = nil
	w.mu.Unlock()
	w.cart.ClearCart()
	w.log.Info("order created",
		slog.String("order_id", created.ID.String()),
		slog.String("store_id", activeStore.String()))
	w.notifier.Notify()
	return created, nil
}

// CancelOrder asks the service to move the order to CANCELLED and, on
// success, replaces the matching history entry with a copy that differs only
// in status. Eligibility (not delivered, not already cancelled) is the
// presenter's check via Order.IsCancellable.
func (w *OrderWorkflow) CancelOrder(ctx context.Context, ord order.Order) error {
	if err := w.gateway.UpdateOrderStatus(ctx, ord.ID, order.StatusCancelled); err != nil {
		w.mu.Lock()
		w.lastErr = err
		w.mu.Unlock()
		w.log.Warn("order cancellation failed",
			slog.String("order_id", ord.ID.String()),
			slog.String("error", err.Error()))
		w.notifier.Notify()
		return err
	}

	// Shallow copy on purpose: pointer fields keep referring to the same
	// immutable values, so everything except the status stays identical.
	var cancelled order.Order
	if err := copier.Copy(&cancelled, &ord); err != nil {
		wrapped := errs.Wrap(err, "failed to copy order")
		w.mu.Lock()
		w.lastErr = wrapped
		w.mu.Unlock()
		w.notifier.Notify()
		return wrapped
	}
	cancelled.Status = order.StatusCancelled

	w.mu.Lock()
	for i := range w.orders {
		if w.orders[i].ID == ord.ID {
			w.orders[i] = cancelled
			break
		}
	}
	w.lastErr = nil
	w.mu.Unlock()
	w.log.Info("order cancelled", slog.String("order_id", ord.ID.String()))
	w.notifier.Notify()
	return nil
}

// Orders returns the history snapshot, newest first.
func (w *OrderWorkflow) Orders() []order.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]order.Order(nil), w.orders...)
}

func (w *OrderWorkflow) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

func (w *OrderWorkflow) DismissError() {
	w.mu.Lock()
	w.lastErr = nil
	w.mu.Unlock()
	w.notifier.Notify()
}

func (w *OrderWorkflow) Subscribe() (<-chan struct{}, func()) {
	return w.notifier.Subscribe()
}

func (w *OrderWorkflow) Version() uint64 {
	return w.notifier.Version()
}
