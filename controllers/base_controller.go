package controllers

import (
	apperrors "labourlink-backend/lib/utils/app-errors"
	authutils "labourlink-backend/lib/utils/auth-utils"
	apimodels "labourlink-backend/models/api"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParam(ctx, "id")
}

func (c *BaseAPIController) GetParam(ctx *fiber.Ctx, name string) (string, error) {
	value := strings.TrimSpace(ctx.Params(name))
	if value == "" {
		return "", errors.Errorf("%v is required", name)
	}
	return value, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path())
	if userID := authutils.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}

// SendError maps domain error kinds to HTTP statuses. Unknown errors are 500 with the fallback message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, fallback string) error {
	status := fiber.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		status = fiber.StatusBadRequest
	case apperrors.KindAuthorization:
		status = fiber.StatusForbidden
	case apperrors.KindNotFound:
		status = fiber.StatusNotFound
	case apperrors.KindConflict:
		status = fiber.StatusConflict
	case apperrors.KindTransient:
		status = fiber.StatusServiceUnavailable
	}
	message := fallback
	if status != fiber.StatusInternalServerError {
		message = apperrors.Message(err)
	}
	entry := logger.WithError(err).WithField("status", status)
	if status >= fiber.StatusInternalServerError {
		entry.Error(fallback)
	} else {
		entry.Warn(fallback)
	}
	return ctx.Status(status).JSON(apimodels.NewError(message))
}
