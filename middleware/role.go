package middleware

import (
	"elimunova/database"
	"elimunova/models"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoleAllowed is the access decision: an empty current role means the role
// is unknown (record missing or not yet resolved) and is always a deny when
// any role is required.
func RoleAllowed(currentRole, requiredRole string) bool {
	if requiredRole == "" {
		return true
	}
	return currentRole == requiredRole
}

// LookupRole fetches the authoritative role for a user from the user_roles
// table. Returns "" when no active role record exists.
func LookupRole(db *gorm.DB, userID uint) (string, error) {
	var userRole models.UserRole
	err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&userRole).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return userRole.Role, nil
}

// RequireRole returns a middleware that denies the request unless the
// authenticated user holds the required role. The role is re-fetched on
// every request; the token is never trusted for it.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Authentication required. Please log in.",
				"data":    nil,
			})
		}

		role, err := LookupRole(database.Database.Db, userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking role!",
				"data":    nil,
			})
		}

		if !RoleAllowed(role, requiredRole) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": fmt.Sprintf("Access denied! This resource is only accessible to %ss.", roleLabel(requiredRole)),
				"data":    nil,
			})
		}

		c.Locals("role", role)
		return c.Next()
	}
}

func roleLabel(role string) string {
	switch role {
	case models.RoleStudent:
		return "student"
	case models.RoleInstructor:
		return "instructor"
	default:
		return role
	}
}
