package initializers

import (
	"context"
	"labourlink-backend/config"
	"labourlink-backend/fiberlog"
	applicationhandler "labourlink-backend/lib/application"
	contactpolicy "labourlink-backend/lib/contact"
	counterreconcile "labourlink-backend/lib/counter-reconcile"
	xlsexport "labourlink-backend/lib/export/xls"
	gpthandler "labourlink-backend/lib/gpt"
	notificationhandler "labourlink-backend/lib/notification"
	profilehandler "labourlink-backend/lib/profile"
	reporthandler "labourlink-backend/lib/report"
	reviewhandler "labourlink-backend/lib/review"
	savedjobhandler "labourlink-backend/lib/saved-job"
	"labourlink-backend/lib/utils/lock"
	vacancyhandler "labourlink-backend/lib/vacancy"
	connectionhub "labourlink-backend/lib/ws/hub/connection-hub"
	"time"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	InitRedis()
	connectionhub.Init()
	lock.InitResourceLock(ctx)
	notificationhandler.NewHandler()
	contactpolicy.NewHandler()
	reviewhandler.NewHandler()
	profilehandler.NewHandler()
	vacancyhandler.NewHandler()
	applicationhandler.NewHandler()
	savedjobhandler.NewHandler()
	reporthandler.NewHandler()
	counterreconcile.NewHandler()
	xlsexport.NewHandler()
	gpthandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	if makeTimeGap(ctx) {
		// compares vacancy fill counters with accepted applications
		counterreconcile.StartWorker(ctx,
			time.Duration(config.Conf.Reconcile.IntervalInMin)*time.Minute,
			*config.Conf.Reconcile.AutoFix,
			config.Conf.ErrNotify.Addr)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
