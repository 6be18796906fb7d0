package apiv1

import (
	"labourlink-backend/config"
	"labourlink-backend/controllers"
	reviewhandler "labourlink-backend/lib/review"
	"labourlink-backend/middleware"
	apimodels "labourlink-backend/models/api"
	reviewapimodels "labourlink-backend/models/api/review"
	"time"

	"github.com/gofiber/fiber/v2"
)

type reviewApiController struct {
	controllers.BaseAPIController
}

func InitReviewApiRouters(app *fiber.App) {
	controller := reviewApiController{}
	app.Route("review", func(router fiber.Router) {
		router.Post("", middleware.RateLimit("review", config.Conf.RateLimit.ReviewPerHour, time.Hour), controller.submit)
		router.Get("eligibility/:to_id", controller.eligibility)
		router.Get(":user_id", controller.summary)
	})
}

// @Summary Submit
// @Tags Review
// @Description Rates another user once. Repeated rating is refused.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reviewapimodels.ReviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 429 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/review [post]
func (c *reviewApiController) submit(ctx *fiber.Ctx) error {
	var payload reviewapimodels.ReviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := reviewhandler.Instance.Submit(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit review")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Eligibility
// @Tags Review
// @Description Whether the caller may still rate the user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   to_id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=reviewapimodels.Eligibility}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/review/eligibility/{to_id} [get]
func (c *reviewApiController) eligibility(ctx *fiber.Ctx) error {
	toID, err := c.GetParam(ctx, "to_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reviewhandler.Instance.CheckEligibility(middleware.GetUserID(ctx), toID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to check review eligibility")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Rating
// @Tags Review
// @Description Reviews of the user, newest first, with the average rating
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   user_id        		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=reviewapimodels.RatingSummary}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/review/{user_id} [get]
func (c *reviewApiController) summary(ctx *fiber.Ctx) error {
	userID, err := c.GetParam(ctx, "user_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := reviewhandler.Instance.Summary(userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get reviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
