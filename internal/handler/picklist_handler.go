package handler

import (
	"fmt"
	"strconv"

	"go-warehouse-ws/internal/model"
	"go-warehouse-ws/internal/printing"
	"go-warehouse-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PicklistHandler struct {
	service service.PicklistService
}

func NewPicklistHandler(s service.PicklistService) *PicklistHandler {
	return &PicklistHandler{service: s}
}

type createPicklistRequest struct {
	model.Picklist
	Items []model.PicklistItem `json:"items"`
}

type updatePicklistStatusRequest struct {
	Status model.PicklistStatus `json:"status"`
}

func (h *PicklistHandler) GetPicklists(c *fiber.Ctx) error {
	picklists, err := h.service.GetPicklists()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(picklists)
}

func (h *PicklistHandler) GetPicklist(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid picklist id", "field": "id"})
	}

	picklist, err := h.service.GetPicklist(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(picklist)
}

func (h *PicklistHandler) GetPicklistItems(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid picklist id", "field": "id"})
	}

	items, err := h.service.GetPicklistItems(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

func (h *PicklistHandler) CreatePicklist(c *fiber.Ctx) error {
	var req createPicklistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	picklist, err := h.service.CreatePicklist(&req.Picklist, req.Items)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(201).JSON(picklist)
}

func (h *PicklistHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid picklist id", "field": "id"})
	}

	var req updatePicklistStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	picklist, err := h.service.UpdatePicklistStatus(id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(picklist)
}

func (h *PicklistHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid picklist item id", "field": "id"})
	}

	var updates service.PickItemUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON", "field": ""})
	}

	item, err := h.service.UpdatePicklistItem(id, &updates)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(item)
}

// GetDocument serves the printable pick sheet as a PDF download.
func (h *PicklistHandler) GetDocument(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid picklist id", "field": "id"})
	}

	picklist, err := h.service.GetPicklist(id)
	if err != nil {
		return writeError(c, err)
	}
	items, err := h.service.GetPicklistItems(id)
	if err != nil {
		return writeError(c, err)
	}

	pdfBytes, err := printing.GeneratePickSheet(picklist, items)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to generate pick sheet"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"picklist_%d.pdf\"", id))
	c.Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	return c.Send(pdfBytes)
}
