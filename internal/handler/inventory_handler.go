package handler

import (
	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetSkus(c *fiber.Ctx) error {
	skus, err := h.service.GetSkus()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(skus)
}

func (h *InventoryHandler) GetSku(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid SKU id", "field": "id"})
	}

	sku, err := h.service.GetSku(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sku)
}

func (h *InventoryHandler) CreateSku(c *fiber.Ctx) error {
	var sku model.Sku
	if err := c.BodyParser(&sku); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	created, err := h.service.CreateSku(&sku)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(created)
}

func (h *InventoryHandler) UpdateSku(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid SKU id", "field": "id"})
	}

	var updates service.SkuUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	sku, err := h.service.UpdateSku(id, &updates)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sku)
}

func (h *InventoryHandler) DeleteSku(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid SKU id", "field": "id"})
	}

	if err := h.service.DeleteSku(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(204)
}
