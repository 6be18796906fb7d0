package middleware

import (
	"labourlink-backend/lib/ratelimit"
	apimodels "labourlink-backend/models/api"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimit counts requests per route and user. Zero limit disables it.
func RateLimit(name string, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if limit <= 0 || ratelimit.Instance == nil {
			return ctx.Next()
		}
		key := name + ":" + GetUserID(ctx)
		if GetUserID(ctx) == "" {
			key = name + ":ip:" + ctx.IP()
		}
		if !ratelimit.Instance.Allow(key, limit, window) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(apimodels.NewError("too many requests, try again later"))
		}
		return ctx.Next()
	}
}
