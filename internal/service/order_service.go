package service

import (
	"context"
	"errors"
	"log"
	"time"

	"go-warehouse-ws/internal/events"
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/internal/ws"
	"go-warehouse-ws/pkg/validator"
)

var (
	ErrInvalidTransition = errors.New("illegal order status transition")
	ErrNothingToAdvance  = errors.New("order already dispatched")
)

type OrderService interface {
	CreateOrder(order *model.Order, items []model.OrderItem) (*model.Order, error)
	GetOrders() ([]model.Order, error)
	GetOrder(id int64) (*model.Order, error)
	GetOrderItems(id int64) ([]model.OrderItem, error)
	UpdateOrderStatus(id int64, status model.OrderStatus) (*model.Order, error)
	AdvanceOrder(id int64) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	wsHub     *ws.Hub
	publisher events.Publisher
}

func NewOrderService(orderRepo repository.OrderRepository, hub *ws.Hub, publisher events.Publisher) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		wsHub:     hub,
		publisher: publisher,
	}
}

// CreateOrder persists the order and its items in one unit of work. Item
// SKUs are not validated against stock.
func (s *orderService) CreateOrder(order *model.Order, items []model.OrderItem) (*model.Order, error) {
	if order.Status == "" {
		order.Status = model.OrderPending
	}
	if verr := validator.FirstError(order); verr != nil {
		return nil, verr
	}
	for i := range items {
		if verr := validator.FirstError(&items[i]); verr != nil {
			return nil, verr
		}
	}

	order.ID = 0
	order.CreatedAt = time.Now()
	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, err
	}

	s.publish("order_created", order)
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":    "order_created",
		"orderId": order.ID,
		"ref":     order.OrderID,
		"status":  order.Status,
	})

	return order, nil
}

func (s *orderService) GetOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrder(id int64) (*model.Order, error) {
	return s.orderRepo.FindByID(id)
}

func (s *orderService) GetOrderItems(id int64) ([]model.OrderItem, error) {
	if _, err := s.orderRepo.FindByID(id); err != nil {
		return nil, err
	}
	return s.orderRepo.FindItems(id)
}

// UpdateOrderStatus validates the transition against the closed table and
// stamps the matching milestone timestamp on entry.
func (s *orderService) UpdateOrderStatus(id int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, &validator.ValidationError{
			Message: "unknown order status '" + string(status) + "'",
			Field:   "status",
		}
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	order.Status = status
	stampMilestone(order, status, time.Now())

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.publish("order_status_changed", order)
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":    "order_status_changed",
		"orderId": order.ID,
		"ref":     order.OrderID,
		"status":  order.Status,
	})

	return order, nil
}

// AdvanceOrder stamps the first unset milestone of the picked → packed →
// manifested → dispatched pipeline and syncs the status field.
func (s *orderService) AdvanceOrder(id int64) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch {
	case order.PickedAt == nil:
		order.PickedAt = &now
		order.Status = model.OrderInProcess
	case order.PackedAt == nil:
		order.PackedAt = &now
		order.Status = model.OrderInProcess
	case order.ManifestedAt == nil:
		order.ManifestedAt = &now
		order.Status = model.OrderCompleted
	case order.DispatchedAt == nil:
		order.DispatchedAt = &now
		order.Status = model.OrderDispatched
	default:
		return nil, ErrNothingToAdvance
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.publish("order_status_changed", order)
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":    "order_status_changed",
		"orderId": order.ID,
		"ref":     order.OrderID,
		"status":  order.Status,
	})

	return order, nil
}

// stampMilestone sets the milestone timestamp matching the new status, if
// it has not been stamped already.
func stampMilestone(order *model.Order, status model.OrderStatus, now time.Time) {
	switch status {
	case model.OrderInProcess:
		if order.PickedAt == nil {
			order.PickedAt = &now
		}
	case model.OrderCompleted:
		if order.PackedAt == nil {
			order.PackedAt = &now
		}
		if order.ManifestedAt == nil {
			order.ManifestedAt = &now
		}
	case model.OrderDispatched:
		if order.DispatchedAt == nil {
			order.DispatchedAt = &now
		}
	}
}

func (s *orderService) publish(eventType string, order *model.Order) {
	event := &events.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		OrderRef:  order.OrderID,
		Status:    order.Status,
		Timestamp: time.Now(),
	}
	go func() {
		if err := s.publisher.PublishOrderEvent(context.Background(), event); err != nil {
			log.Printf("Warning: failed to publish %s event for order %d: %v", eventType, order.ID, err)
		}
	}()
}
