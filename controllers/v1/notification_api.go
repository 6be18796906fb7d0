package apiv1

import (
	"labourlink-backend/controllers"
	notificationhandler "labourlink-backend/lib/notification"
	"labourlink-backend/middleware"
	apimodels "labourlink-backend/models/api"
	notificationapimodels "labourlink-backend/models/api/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("unread_count", controller.unreadCount)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary List
// @Tags Notification
// @Description Notifications of the caller, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/notification [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	list, err := notificationhandler.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Unread count
// @Tags Notification
// @Description Number of unread notifications of the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=notificationapimodels.UnreadCount}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/notification/unread_count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	count, err := notificationhandler.Instance.UnreadCount(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to count notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(notificationapimodels.UnreadCount{Count: count}))
}

// @Summary Mark read
// @Tags Notification
// @Description Marks a notification of the caller as read
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/notification/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	found, err := notificationhandler.Instance.MarkRead(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to mark notification")
	}
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("notification not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
