package handler

import (
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

type createOrderRequest struct {
	model.Order
	Items []model.OrderItem `json:"items"`
}

type updateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid order id", "field": "id"})
	}

	order, err := h.service.GetOrder(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) GetOrderItems(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid order id", "field": "id"})
	}

	items, err := h.service.GetOrderItems(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	order, err := h.service.CreateOrder(&req.Order, req.Items)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(order)
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid order id", "field": "id"})
	}

	var req updateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	order, err := h.service.UpdateOrderStatus(id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) Advance(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid order id", "field": "id"})
	}

	order, err := h.service.AdvanceOrder(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}
