package apiv1

import (
	"labourlink-backend/config"
	"labourlink-backend/controllers"
	reporthandler "labourlink-backend/lib/report"
	"labourlink-backend/middleware"
	"labourlink-backend/models"
	apimodels "labourlink-backend/models/api"
	reportapimodels "labourlink-backend/models/api/report"
	"time"

	"github.com/gofiber/fiber/v2"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Get("reasons", controller.reasons)
		router.Post("", middleware.RateLimit("report", config.Conf.RateLimit.ReportPerHour, time.Hour), controller.submit)
	})
}

// @Summary Reasons
// @Tags Report
// @Description Report reasons grouped by category for the reported role
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   target_role    		query    string  				    	true         "worker or owner"
// @Success 200 {object} apimodels.Response{data=[]models.ReportCategory}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/report/reasons [get]
func (c *reportApiController) reasons(ctx *fiber.Ctx) error {
	resp, err := reporthandler.Instance.Reasons(models.UserRole(ctx.Query("target_role")))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get report reasons")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Submit
// @Tags Report
// @Description Reports a user to moderation
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportapimodels.ReportData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 429 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/report [post]
func (c *reportApiController) submit(ctx *fiber.Ctx) error {
	var payload reportapimodels.ReportData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := reporthandler.Instance.Submit(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit report")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
