package handler

import (
	"time"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RackHandler struct {
	inventory  service.InventoryService
	allocation service.AllocationService
}

func NewRackHandler(inventory service.InventoryService, allocation service.AllocationService) *RackHandler {
	return &RackHandler{inventory: inventory, allocation: allocation}
}

func (h *RackHandler) GetRacks(c *fiber.Ctx) error {
	racks, err := h.inventory.GetRacks()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(racks)
}

func (h *RackHandler) CreateRack(c *fiber.Ctx) error {
	var rack model.Rack
	if err := c.BodyParser(&rack); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	created, err := h.inventory.CreateRack(&rack)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(created)
}

func (h *RackHandler) GetAllocations(c *fiber.Ctx) error {
	allocations, err := h.allocation.GetStockAllocations()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(allocations)
}

func (h *RackHandler) Allocate(c *fiber.Ctx) error {
	var req model.StockAllocation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	result, err := h.allocation.AllocateStock(&req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(result)
}

func (h *RackHandler) Release(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid allocation id", "field": "id"})
	}

	if err := h.allocation.ReleaseStock(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(204)
}

func (h *RackHandler) GetStockAgeing(c *fiber.Ctx) error {
	rows, err := h.allocation.GetStockAgeing(time.Now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rows)
}
