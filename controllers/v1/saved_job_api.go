package apiv1

import (
	"labourlink-backend/controllers"
	savedjobhandler "labourlink-backend/lib/saved-job"
	"labourlink-backend/middleware"
	apimodels "labourlink-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type savedJobApiController struct {
	controllers.BaseAPIController
}

func InitSavedJobApiRouters(app *fiber.App) {
	controller := savedJobApiController{}
	app.Route("saved_job", func(router fiber.Router) {
		router.Use(middleware.WorkerRole())
		router.Get("", controller.list)
		router.Put(":vacancy_id", controller.save)
		router.Delete(":vacancy_id", controller.remove)
	})
}

// @Summary List
// @Tags Saved job
// @Description Saved vacancies of the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/saved_job [get]
func (c *savedJobApiController) list(ctx *fiber.Ctx) error {
	list, err := savedjobhandler.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get saved jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Save
// @Tags Saved job
// @Description Bookmarks a vacancy. Saving twice is a no-op.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id     		path    string  				    	true         "vacancy ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/saved_job/{vacancy_id} [put]
func (c *savedJobApiController) save(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetParam(ctx, "vacancy_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = savedjobhandler.Instance.Save(middleware.GetUserID(ctx), vacancyID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove
// @Tags Saved job
// @Description Removes a bookmark
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id     		path    string  				    	true         "vacancy ID"
// @Success 200 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/saved_job/{vacancy_id} [delete]
func (c *savedJobApiController) remove(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetParam(ctx, "vacancy_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = savedjobhandler.Instance.Remove(middleware.GetUserID(ctx), vacancyID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to remove saved job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
