package handler

import (
	"go-warehouse-ws/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// ConnectorHandler serves the seeded connector health records. The API
// never mutates them.
type ConnectorHandler struct {
	repo repository.ConnectorRepository
}

func NewConnectorHandler(repo repository.ConnectorRepository) *ConnectorHandler {
	return &ConnectorHandler{repo: repo}
}

func (h *ConnectorHandler) GetConnectors(c *fiber.Ctx) error {
	connectors, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to fetch connectors"})
	}
	return c.JSON(connectors)
}
