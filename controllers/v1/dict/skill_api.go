package dict

import (
	"labourlink-backend/controllers"
	"labourlink-backend/models"
	apimodels "labourlink-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type skillDictApiController struct {
	controllers.BaseAPIController
}

func InitSkillDictApiRouters(app *fiber.App) {
	controller := skillDictApiController{}
	app.Route("skills", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Skill list
// @Tags Dictionary
// @Description Fixed list of factory skills
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 401
// @router /api/v1/dict/skills [get]
func (c *skillDictApiController) list(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(models.SkillList))
}
