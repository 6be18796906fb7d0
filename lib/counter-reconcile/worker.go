package counterreconcile

import (
	"context"
	baseworker "labourlink-backend/lib/utils/base-worker"
	botnotify "labourlink-backend/lib/utils/bot-notify"
	"time"
)

// StartWorker posts every drift to notifyAddr when it is set.
func StartWorker(ctx context.Context, interval time.Duration, autoFix bool, notifyAddr string) {
	w := &worker{
		BaseImpl:   *baseworker.NewInstance("CounterReconcileWorker", 30*time.Second, interval),
		handler:    Instance,
		autoFix:    autoFix,
		notifyAddr: notifyAddr,
	}
	go w.Run(ctx, w.handle)
}

type worker struct {
	baseworker.BaseImpl
	handler    Provider
	autoFix    bool
	notifyAddr string
}

func (w worker) handle(ctx context.Context) {
	logger := w.GetLogger()
	list, err := w.handler.Check(ctx, w.autoFix)
	if err != nil {
		logger.WithError(err).Error("counter reconciliation failed")
		return
	}
	if len(list) > 0 {
		logger.
			WithField("drifted", len(list)).
			WithField("auto_fix", w.autoFix).
			Warn("counter reconciliation found drift")
	}
	for _, d := range list {
		botnotify.SendCounterDrift(w.notifyAddr, d.VacancyID, d.WorkerCount, d.FilledCount, d.Accepted, d.Fixed, logger)
	}
}
