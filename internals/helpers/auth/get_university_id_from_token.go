// file: internals/helpers/auth/get_university_id_from_token.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campushub_backend/internals/configs"
)

// small util so we don't duplicate Locals parsing
func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" not found in token")
	}
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" is empty in token")
		}
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" is empty in token")
		}
		id, err := uuid.Parse(strings.TrimSpace(t))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key+" format in token")
		}
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key+" format in token")
}

// GetUniversityIDFromToken returns the tenant scope of the authenticated admin.
// Every admin endpoint is scoped to exactly one university.
func GetUniversityIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "university_id")
}

// GetUserIDFromToken returns the authenticated user's id. When the token
// carries no user_id and DEV_ADMIN_ID is set, that id is used instead so
// local development works without a full auth service.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuidFromLocals(c, "user_id")
	if err != nil && configs.DevAdminID != "" {
		if dev, perr := uuid.Parse(configs.DevAdminID); perr == nil {
			return dev, nil
		}
	}
	return id, err
}
