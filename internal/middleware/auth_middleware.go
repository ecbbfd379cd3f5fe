package middleware

import (
	"strings"

	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT and sets user info in the request context
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"message": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"message": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "Invalid or expired token"})
		}

		// Strict session check against the store
		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"message": "User not found"})
		}
		if user.TokenVersion != claims.TokenVersion {
			return c.Status(401).JSON(fiber.Map{"message": "Session expired (logged in on another device)"})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_name", claims.Name)
		c.Locals("username", claims.Username)
		c.Locals("user_capabilities", claims.Capabilities)

		return c.Next()
	}
}

// RequireCapability checks a capability flag from the token claims. The
// capability set is enforced here at the API boundary, never inside the
// domain services.
func RequireCapability(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		capabilities, ok := c.Locals("user_capabilities").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"message": "No capabilities found"})
		}

		for _, cap := range capabilities {
			if cap == code {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"message": "Forbidden: requires '" + code + "' permission",
		})
	}
}
