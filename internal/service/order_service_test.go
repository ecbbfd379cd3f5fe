package service

import (
	"errors"
	"testing"

	"go-warehouse-ws/internal/events"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/validator"
)

func newOrderService(repos *repository.Repositories) OrderService {
	return NewOrderService(repos.Orders, newTestHub(), events.NewNoopPublisher())
}

func createOrder(t *testing.T, svc OrderService) *model.Order {
	t.Helper()
	order, err := svc.CreateOrder(&model.Order{
		OrderID:       "ORD-100",
		Customer:      "Jane Roe",
		Type:          model.OrderManual,
		TotalQuantity: 3,
	}, []model.OrderItem{
		{SkuID: 1, Quantity: 2},
		{SkuID: 2, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	repos := newTestRepos()
	svc := newOrderService(repos)

	order := createOrder(t, svc)
	if order.Status != model.OrderPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if order.ID == 0 {
		t.Error("order was not assigned an id")
	}

	items, err := svc.GetOrderItems(order.ID)
	if err != nil {
		t.Fatalf("get items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.OrderID != order.ID {
			t.Errorf("item %d linked to order %d, want %d", item.ID, item.OrderID, order.ID)
		}
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
		ok       bool
	}{
		{model.OrderPending, model.OrderInProcess, true},
		{model.OrderPending, model.OrderCompleted, false},
		{model.OrderPending, model.OrderDispatched, false},
		{model.OrderInProcess, model.OrderBreached, true},
		{model.OrderInProcess, model.OrderCompleted, true},
		{model.OrderInProcess, model.OrderPending, false},
		{model.OrderBreached, model.OrderCompleted, true},
		{model.OrderBreached, model.OrderDispatched, false},
		{model.OrderCompleted, model.OrderDispatched, true},
		{model.OrderDispatched, model.OrderPending, false},
		{model.OrderDispatched, model.OrderCompleted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestUpdateOrderStatusRejectsIllegalTransition(t *testing.T) {
	repos := newTestRepos()
	svc := newOrderService(repos)
	order := createOrder(t, svc)

	if _, err := svc.UpdateOrderStatus(order.ID, model.OrderDispatched); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending -> dispatched: err = %v, want ErrInvalidTransition", err)
	}

	var verr *validator.ValidationError
	if _, err := svc.UpdateOrderStatus(order.ID, "shipped"); !errors.As(err, &verr) {
		t.Errorf("unknown status: err = %v, want ValidationError", err)
	} else if verr.Field != "status" {
		t.Errorf("field = %q, want status", verr.Field)
	}
}

func TestUpdateOrderStatusStampsMilestones(t *testing.T) {
	repos := newTestRepos()
	svc := newOrderService(repos)
	order := createOrder(t, svc)

	order, err := svc.UpdateOrderStatus(order.ID, model.OrderInProcess)
	if err != nil {
		t.Fatalf("to in-process: %v", err)
	}
	if order.PickedAt == nil {
		t.Fatal("PickedAt not stamped on in-process")
	}
	picked := *order.PickedAt

	order, err = svc.UpdateOrderStatus(order.ID, model.OrderCompleted)
	if err != nil {
		t.Fatalf("to completed: %v", err)
	}
	if order.PackedAt == nil || order.ManifestedAt == nil {
		t.Fatal("PackedAt/ManifestedAt not stamped on completed")
	}
	if !order.PickedAt.Equal(picked) {
		t.Error("PickedAt was restamped")
	}

	order, err = svc.UpdateOrderStatus(order.ID, model.OrderDispatched)
	if err != nil {
		t.Fatalf("to dispatched: %v", err)
	}
	if order.DispatchedAt == nil {
		t.Fatal("DispatchedAt not stamped on dispatched")
	}
}

func TestAdvanceOrderWalksPipeline(t *testing.T) {
	repos := newTestRepos()
	svc := newOrderService(repos)
	order := createOrder(t, svc)

	want := []model.OrderStatus{
		model.OrderInProcess, // picked
		model.OrderInProcess, // packed
		model.OrderCompleted, // manifested
		model.OrderDispatched,
	}
	for i, status := range want {
		got, err := svc.AdvanceOrder(order.ID)
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if got.Status != status {
			t.Errorf("advance %d: status = %q, want %q", i, got.Status, status)
		}
	}

	final, _ := svc.GetOrder(order.ID)
	if final.PickedAt == nil || final.PackedAt == nil || final.ManifestedAt == nil || final.DispatchedAt == nil {
		t.Error("not all milestones stamped after full advance")
	}

	if _, err := svc.AdvanceOrder(order.ID); !errors.Is(err, ErrNothingToAdvance) {
		t.Errorf("advance past dispatched: err = %v, want ErrNothingToAdvance", err)
	}
}

func TestGetOrderItemsUnknownOrder(t *testing.T) {
	repos := newTestRepos()
	svc := newOrderService(repos)

	if _, err := svc.GetOrderItems(999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
