package main

import (
	"context"
	"fmt"
	"labourlink-backend/config"
	apiv1 "labourlink-backend/controllers/v1"
	"labourlink-backend/controllers/v1/dict"
	"labourlink-backend/db"
	"labourlink-backend/fiberlog"
	"labourlink-backend/initializers"
	"labourlink-backend/lib/ws"
	"labourlink-backend/middleware"
	apimodels "labourlink-backend/models/api"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("database is not available"))
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	})

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	if config.Conf.ErrNotify.Addr != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.ErrNotify.Addr))
	}
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Use(middleware.AuthorizationRequired())
	apiv1.InitProfileApiRouters(apiV1)
	apiv1.InitVacancyApiRouters(apiV1)
	apiv1.InitApplicationApiRouters(apiV1)
	apiv1.InitNotificationApiRouters(apiV1)
	apiv1.InitReviewApiRouters(apiV1)
	apiv1.InitReportApiRouters(apiV1)
	apiv1.InitSavedJobApiRouters(apiV1)

	//dict
	dicts := fiber.New()
	apiV1.Mount("/dict", dicts)
	dict.InitSkillDictApiRouters(dicts)

	//websocket
	wsApp := fiber.New()
	apiV1.Mount("/ws", wsApp)
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		if initializers.RedisClient != nil {
			_ = initializers.RedisClient.Close()
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
