package ws

import (
	notificationhandler "labourlink-backend/lib/notification"
	wsclient "labourlink-backend/lib/ws/client"
	connectionhub "labourlink-backend/lib/ws/hub/connection-hub"
	"labourlink-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("userID", middleware.GetUserID(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(notificationHandler))
}

// @Summary Live notifications
// @Tags Websocket
// @Description Pushes notifications to the connected user. Unread ones are replayed on connect.
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 401
// @Failure 500
// @router /api/v1/ws [get]
func notificationHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		_ = c.Close()
		return
	}
	var marker wsclient.ReadMarker
	if notificationhandler.Instance != nil {
		marker = notificationhandler.Instance
	}
	client := wsclient.NewClient(userID, c, marker)
	connectionhub.Instance.AddClient(userID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID)
	}()
	client.Dispatch()
}
