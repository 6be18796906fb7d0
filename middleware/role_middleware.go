package middleware

import (
	profilehandler "labourlink-backend/lib/profile"
	"labourlink-backend/models"
	apimodels "labourlink-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func WorkerRole() fiber.Handler {
	return roleRequired(models.UserRoleWorker)
}

func OwnerRole() fiber.Handler {
	return roleRequired(models.UserRoleOwner)
}

// roleRequired checks the role stored with the account. Tokens carry only the user id and phone.
func roleRequired(role models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		if userID == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is available to " + role.ToHuman() + " accounts only"))
		}
		userRole, err := profilehandler.Instance.GetRole(userID)
		if err != nil {
			log.WithError(err).WithField("user_id", userID).Error("failed to resolve user role")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("failed to resolve account role"))
		}
		if userRole != role {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is available to " + role.ToHuman() + " accounts only"))
		}
		return ctx.Next()
	}
}
