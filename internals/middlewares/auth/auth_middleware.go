package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mentorhub_backend/internals/configs"
	userService "mentorhub_backend/internals/features/users/service"
)

// AuthMiddleware verifies the bearer token and stores user_id + userRole
// in Locals for the handlers downstream.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if configs.JWTSecret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := userService.ParseAccessToken(configs.JWTSecret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - "+err.Error())
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("userRole", claims.Role)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// Cookie first, then Authorization header
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v, nil
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if strings.HasPrefix(auth, p) && len(auth) > len(p) {
		return strings.TrimSpace(auth[len(p):]), nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Missing access token")
}
