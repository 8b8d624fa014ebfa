//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"laman-client/internal/domain/order"
	"laman-client/internal/pkg/errs"
	"laman-client/internal/usecase"
	"laman-client/internal/usecase/shared"
	"laman-client/tests/common/builder"
	gatewaymock "laman-client/tests/mock/gateway"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderWorkflowTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	gateway  *gatewaymock.MockOrderGateway
	cart     *usecase.CartEngine
	workflow *usecase.OrderWorkflow
}

func (s *OrderWorkflowTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = gatewaymock.NewMockOrderGateway(s.ctrl)
	s.cart = usecase.NewCartEngine(shared.NewProductIndex())
	s.workflow = usecase.NewOrderWorkflow(s.cart, s.gateway, discardLogger())
}

func (s *OrderWorkflowTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderWorkflowSuite(t *testing.T) {
	suite.Run(t, new(OrderWorkflowTestSuite))
}

func validForm() usecase.OrderForm {
	return usecase.OrderForm{
		GuestName:       "Aisha",
		GuestPhone:      "+79990001122",
		DeliveryAddress: "Lenina 10, apt 4",
		PaymentMethod:   order.PaymentCash,
	}
}

func (s *OrderWorkflowTestSuite) TestSubmitOrderRoundTrip() {
	storeID := uuid.New()
	p1 := builder.NewProductBuilder().WithStoreID(storeID).WithPrice(100).Build()
	p2 := builder.NewProductBuilder().WithStoreID(storeID).WithPrice(50).Build()
	s.Require().NoError(s.cart.SetQuantity(p1, 2))
	s.Require().NoError(s.cart.SetQuantity(p2, 1))

	created := builder.NewOrderBuilder().WithStatus(order.StatusNeedsConfirmation).Build()

	s.gateway.EXPECT().
		CreateOrder(gomock.Any(), gomock.Cond(func(req order.CreateRequest) bool {
			if req.StoreID != storeID || len(req.Items) != 2 {
				return false
			}
			quantities := map[uuid.UUID]int{}
			for _, it := range req.Items {
				quantities[it.ProductID] = it.Quantity
			}
			return quantities[p1.ID] == 2 && quantities[p2.ID] == 1
		})).
		Return(&created, nil)

	got, err := s.workflow.SubmitOrder(context.Background(), validForm())
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)

	history := s.workflow.Orders()
	s.Require().Len(history, 1)
	s.Equal(created.ID, history[0].ID)

	s.Equal(0, s.cart.Totals().ItemCount)
	s.Nil(s.cart.ActiveStore())
}

func (s *OrderWorkflowTestSuite) TestSubmitOrderGuestAddressFallback() {
	p := builder.NewProductBuilder().Build()
	s.Require().NoError(s.cart.SetQuantity(p, 1))

	created := builder.NewOrderBuilder().Build()
	form := validForm()
	form.GuestAddress = "   "

	s.gateway.EXPECT().
		CreateOrder(gomock.Any(), gomock.Cond(func(req order.CreateRequest) bool {
			return req.GuestAddress == form.DeliveryAddress &&
				req.DeliveryAddress == form.DeliveryAddress &&
				req.Comment == nil
		})).
		Return(&created, nil)

	_, err := s.workflow.SubmitOrder(context.Background(), form)
	s.Require().NoError(err)
}

func (s *OrderWorkflowTestSuite) TestSubmitOrderEmptyCart() {
	_, err := s.workflow.SubmitOrder(context.Background(), validForm())
	s.Require().ErrorIs(err, errs.ErrEmptyCart)
	s.Empty(s.workflow.Orders())
}

func (s *OrderWorkflowTestSuite) TestSubmitOrderFailureLeavesStateUnchanged() {
	p := builder.NewProductBuilder().Build()
	s.Require().NoError(s.cart.SetQuantity(p, 3))

	s.gateway.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrNetwork)

	_, err := s.workflow.SubmitOrder(context.Background(), validForm())
	s.Require().ErrorIs(err, errs.ErrNetwork)

	s.Equal(3, s.cart.Quantity(p.ID), "failed submission must not clear the cart")
	s.Empty(s.workflow.Orders())
	s.Error(s.workflow.LastError())
}

func (s *OrderWorkflowTestSuite) TestSubmitOrderPrependsNewest() {
	storeID := uuid.New()
	p := builder.NewProductBuilder().WithStoreID(storeID).Build()

	first := builder.NewOrderBuilder().Build()
	second := builder.NewOrderBuilder().Build()

	s.Require().NoError(s.cart.SetQuantity(p, 1))
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&first, nil)
	_, err := s.workflow.SubmitOrder(context.Background(), validForm())
	s.Require().NoError(err)

	s.Require().NoError(s.cart.SetQuantity(p, 2))
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&second, nil)
	_, err = s.workflow.SubmitOrder(context.Background(), validForm())
	s.Require().NoError(err)

	history := s.workflow.Orders()
	s.Require().Len(history, 2)
	s.Equal(second.ID, history[0].ID)
	s.Equal(first.ID, history[1].ID)
}

func (s *OrderWorkflowTestSuite) TestCancelOrder() {
	storeID := uuid.New()
	p := builder.NewProductBuilder().WithStoreID(storeID).Build()
	s.Require().NoError(s.cart.SetQuantity(p, 1))

	created := builder.NewOrderBuilder().WithStatus(order.StatusInProgress).Build()
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&created, nil)
	_, err := s.workflow.SubmitOrder(context.Background(), validForm())
	s.Require().NoError(err)

	s.gateway.EXPECT().
		UpdateOrderStatus(gomock.Any(), created.ID, order.StatusCancelled).
		Return(nil)

	s.Require().NoError(s.workflow.CancelOrder(context.Background(), created))

	want := created
	want.Status = order.StatusCancelled
	got := s.workflow.Orders()[0]
	s.Empty(cmp.Diff(want, got), "only the status may differ")
	s.NoError(s.workflow.LastError())
}

func (s *OrderWorkflowTestSuite) TestCancelOrderFailureLeavesHistory() {
	storeID := uuid.New()
	p := builder.NewProductBuilder().WithStoreID(storeID).Build()
	s.Require().NoError(s.cart.SetQuantity(p, 1))

	created := builder.NewOrderBuilder().WithStatus(order.StatusInProgress).Build()
	s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&created, nil)
	_, err := s.workflow.SubmitOrder(context.Background(), validForm())
	s.Require().NoError(err)

	s.gateway.EXPECT().
		UpdateOrderStatus(gomock.Any(), created.ID, order.StatusCancelled).
		Return(errs.ErrNetwork)

	err = s.workflow.CancelOrder(context.Background(), created)
	s.Require().ErrorIs(err, errs.ErrNetwork)
	s.Equal(order.StatusInProgress, s.workflow.Orders()[0].Status)
	s.Error(s.workflow.LastError(), "every failed cancellation must be surfaced")
}

func TestOrderFormValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*usecase.OrderForm)
		errIs  error
	}{
		{
			name:   "valid form",
			mutate: func(f *usecase.OrderForm) {},
		},
		{
			name:   "blank name",
			mutate: func(f *usecase.OrderForm) { f.GuestName = "  " },
			errIs:  errs.ErrBlankGuestName,
		},
		{
			name:   "blank phone",
			mutate: func(f *usecase.OrderForm) { f.GuestPhone = "" },
			errIs:  errs.ErrBlankGuestPhone,
		},
		{
			name:   "blank delivery address",
			mutate: func(f *usecase.OrderForm) { f.DeliveryAddress = "\t" },
			errIs:  errs.ErrBlankDeliveryAddr,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			err := form.Validate()
			if tc.errIs == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.errIs) {
				t.Fatalf("expected %v, got %v", tc.errIs, err)
			}
		})
	}
}
