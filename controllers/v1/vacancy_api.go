package apiv1

import (
	"fmt"
	"labourlink-backend/controllers"
	applicationhandler "labourlink-backend/lib/application"
	pdfexport "labourlink-backend/lib/export/pdf"
	xlsexport "labourlink-backend/lib/export/xls"
	gpthandler "labourlink-backend/lib/gpt"
	vacancyhandler "labourlink-backend/lib/vacancy"
	"labourlink-backend/middleware"
	apimodels "labourlink-backend/models/api"
	vacancyapimodels "labourlink-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancy", func(router fiber.Router) {
		router.Post("", middleware.OwnerRole(), controller.create)
		router.Get("my", middleware.OwnerRole(), controller.my)
		router.Post("list", controller.list)
		router.Post("description_draft", middleware.OwnerRole(), controller.descriptionDraft)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.OwnerRole(), controller.update)
			idRoute.Put("status", middleware.OwnerRole(), controller.changeStatus)
			idRoute.Put("renew", middleware.OwnerRole(), controller.renew)
			idRoute.Get("applications", middleware.OwnerRole(), controller.applications)
			idRoute.Get("applications/export", middleware.OwnerRole(), controller.exportApplications)
			idRoute.Get("poster", controller.poster)
		})
	})
}

// @Summary Create
// @Tags Vacancy
// @Description Posts a new vacancy. It is active and open for the full headcount.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vacancyhandler.Instance.Post(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update
// @Tags Vacancy
// @Description Edits the vacancy text fields. Counters and status are kept.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [put]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload vacancyapimodels.VacancyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = vacancyhandler.Instance.Edit(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change status
// @Tags Vacancy
// @Description Activates or closes the vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.StatusChangeRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/status [put]
func (c *vacancyApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload vacancyapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = vacancyhandler.Instance.SetStatus(middleware.GetUserID(ctx), id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change vacancy status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Renew
// @Tags Vacancy
// @Description Restarts the 30 day lifetime and reactivates the vacancy
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/renew [put]
func (c *vacancyApiController) renew(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = vacancyhandler.Instance.Renew(middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to renew vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get by ID
// @Tags Vacancy
// @Description Vacancy card
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get vacancy")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Owner vacancies
// @Tags Vacancy
// @Description Vacancies of the caller split into active and expired, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.OwnerVacancies}
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/my [get]
func (c *vacancyApiController) my(ctx *fiber.Ctx) error {
	list, err := vacancyhandler.Instance.ListForOwner(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get vacancy list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(vacancyapimodels.PartitionForOwner(list)))
}

// @Summary Browse
// @Tags Vacancy
// @Description Active, not expired vacancies, newest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.VacancyFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/list [post]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := vacancyhandler.Instance.ListActiveForWorkers(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get vacancy list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Applications
// @Tags Vacancy
// @Description Applicants of the vacancy. Phone is present for accepted ones only.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/applications [get]
func (c *vacancyApiController) applications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.ListForVacancy(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get application list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Export applications
// @Tags Vacancy
// @Description Applicants of the vacancy as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/applications/export [get]
func (c *vacancyApiController) exportApplications(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	vacancy, err := vacancyhandler.Instance.GetOwned(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get vacancy")
	}
	list, err := applicationhandler.Instance.ListForVacancy(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get application list")
	}
	buf, err := xlsexport.Instance.ExportApplicantList(vacancy.JobTitle, list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applications")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="applicants_%v.xlsx"`, id))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Poster
// @Tags Vacancy
// @Description Printable job poster in pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/vacancy/{id}/poster [get]
func (c *vacancyApiController) poster(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := vacancyhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get vacancy")
	}
	data, err := pdfexport.GenerateVacancyPoster(view, nil)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate poster")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="vacancy_%v.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Description draft
// @Tags Vacancy
// @Description AI generated vacancy description, available when the generator is configured
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 vacancyapimodels.DescriptionDraftRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.DescriptionDraft}
// @Failure 400 {object} apimodels.Response
// @Failure 501 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/vacancy/description_draft [post]
func (c *vacancyApiController) descriptionDraft(ctx *fiber.Ctx) error {
	if gpthandler.Instance == nil {
		return ctx.Status(fiber.StatusNotImplemented).JSON(apimodels.NewError("description generator is not configured"))
	}
	var payload vacancyapimodels.DescriptionDraftRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.DescriptionDraft(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate description")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
