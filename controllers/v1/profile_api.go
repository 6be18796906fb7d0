package apiv1

import (
	"io"
	"labourlink-backend/controllers"
	profilehandler "labourlink-backend/lib/profile"
	"labourlink-backend/middleware"
	apimodels "labourlink-backend/models/api"
	profileapimodels "labourlink-backend/models/api/profile"

	"github.com/gofiber/fiber/v2"
)

const maxPhotoSize = 5 * 1024 * 1024

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Route("profile", func(router fiber.Router) {
		router.Get("me", controller.me)
		router.Post("worker", controller.setupWorker)
		router.Post("owner", controller.setupOwner)
		router.Put("photo", middleware.WithBodyLimit(maxPhotoSize+64*1024), controller.uploadPhoto)
		router.Get(":id/public", controller.public)
	})
}

// @Summary Current profile
// @Tags Profile
// @Description Account of the caller with the role profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.MeView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/profile/me [get]
func (c *profileApiController) me(ctx *fiber.Ctx) error {
	resp, err := profilehandler.Instance.GetMe(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Worker profile setup
// @Tags Profile
// @Description Creates or updates the worker account. The phone comes from the token.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.WorkerData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/profile/worker [post]
func (c *profileApiController) setupWorker(ctx *fiber.Ctx) error {
	var payload profileapimodels.WorkerData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := profilehandler.Instance.SetupWorker(middleware.GetUserID(ctx), middleware.GetPhone(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save worker profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Owner profile setup
// @Tags Profile
// @Description Creates or updates the factory owner account. The phone comes from the token.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.OwnerData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/profile/owner [post]
func (c *profileApiController) setupOwner(ctx *fiber.Ctx) error {
	var payload profileapimodels.OwnerData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := profilehandler.Instance.SetupOwner(middleware.GetUserID(ctx), middleware.GetPhone(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save owner profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Profile photo
// @Tags Profile
// @Description Uploads the profile photo (multipart field "photo")
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   photo				formData	file	true	"image file"
// @Success 200 {object} apimodels.Response{data=profileapimodels.PhotoView}
// @Failure 400 {object} apimodels.Response
// @Failure 413 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/profile/photo [put]
func (c *profileApiController) uploadPhoto(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("photo file is required"))
	}
	if file.Size > maxPhotoSize {
		return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError("photo is too large"))
	}
	reader, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unable to read photo"))
	}
	defer reader.Close()
	body, err := io.ReadAll(reader)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unable to read photo"))
	}
	url, err := profilehandler.Instance.UploadPhoto(ctx.UserContext(), middleware.GetUserID(ctx), body, file.Filename, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to upload photo")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(profileapimodels.PhotoView{PhotoURL: url}))
}

// @Summary Public profile
// @Tags Profile
// @Description Profile of another user with reviews and average rating. Never contains the phone.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=profileapimodels.PublicProfile}
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/profile/{id}/public [get]
func (c *profileApiController) public(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := profilehandler.Instance.GetPublicProfile(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
