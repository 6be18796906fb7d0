package apiv1

import (
	"labourlink-backend/config"
	"labourlink-backend/controllers"
	applicationhandler "labourlink-backend/lib/application"
	"labourlink-backend/middleware"
	apimodels "labourlink-backend/models/api"
	applicationapimodels "labourlink-backend/models/api/application"
	"time"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Post("", middleware.WorkerRole(),
			middleware.RateLimit("apply", config.Conf.RateLimit.ApplyPerHour, time.Hour), controller.apply)
		router.Get("my", middleware.WorkerRole(), controller.my)
		router.Get("applied_ids", middleware.WorkerRole(), controller.appliedIDs)
		router.Delete("vacancy/:vacancy_id", middleware.WorkerRole(), controller.withdraw)
		router.Put(":id/decision", middleware.OwnerRole(), controller.decide)
	})
}

// @Summary Apply
// @Tags Application
// @Description Applies the caller to a vacancy. One application per worker and vacancy.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 429 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/application [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicationhandler.Instance.Apply(middleware.GetUserID(ctx), payload.VacancyID, payload.OwnerID, payload.WorkerName)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to apply")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Withdraw
// @Tags Application
// @Description Withdraws the caller's application. Vacancy counters are not changed.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id     		path    string  				    	true         "vacancy ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/application/vacancy/{vacancy_id} [delete]
func (c *applicationApiController) withdraw(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetParam(ctx, "vacancy_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicationhandler.Instance.Withdraw(middleware.GetUserID(ctx), vacancyID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to withdraw application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Decision
// @Tags Application
// @Description Accepts or rejects an application of the caller's vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.DecideRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/application/{id}/decision [put]
func (c *applicationApiController) decide(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.DecideRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.Decide(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change application status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary My applications
// @Tags Application
// @Description Applications of the caller with vacancy details. Owner phone is present once accepted.
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.MyApplicationView}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/application/my [get]
func (c *applicationApiController) my(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.ListForWorker(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get application list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Applied vacancy IDs
// @Tags Application
// @Description IDs of vacancies the caller has applied to
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/application/applied_ids [get]
func (c *applicationApiController) appliedIDs(ctx *fiber.Ctx) error {
	ids, err := applicationhandler.Instance.AppliedVacancyIDs(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get applied vacancies")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(ids))
}
