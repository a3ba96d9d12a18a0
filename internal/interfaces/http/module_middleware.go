package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/robobooks/robobooks-api/internal/application/dto"
)

// moduleChecker is the minimal contract the middleware needs to verify
// modules. Implemented by *usecase.ModuleService; the interface avoids an
// import cycle.
type moduleChecker interface {
	HasActiveModule(ctx context.Context, orgID, moduleName string) (bool, error)
}

// RequireModule returns a middleware that checks whether the token's org has
// the module active. Must run after AuthMiddleware (it needs LocalOrgID).
//
//   - 403 Forbidden when the module is not subscribed or expired.
//   - 503 Service Unavailable on an infrastructure failure.
//   - 401 when org_id is missing from the context.
func RequireModule(moduleName string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orgID := GetOrgID(c)
		if orgID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "org_id not found in token",
			})
		}

		active, err := checker.HasActiveModule(c.Context(), orgID, moduleName)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "could not verify the module, try again later",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DISABLED",
				Message: "module '" + moduleName + "' is not active for this organization",
			})
		}

		return c.Next()
	}
}
