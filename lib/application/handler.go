package applicationhandler

import (
	"context"
	"labourlink-backend/db"
	applicationstore "labourlink-backend/lib/application/store"
	contactpolicy "labourlink-backend/lib/contact"
	notificationhandler "labourlink-backend/lib/notification"
	profilestore "labourlink-backend/lib/profile/store"
	apperrors "labourlink-backend/lib/utils/app-errors"
	initchecker "labourlink-backend/lib/utils/init-checker"
	"labourlink-backend/lib/utils/lock"
	vacancystore "labourlink-backend/lib/vacancy/store"
	"labourlink-backend/models"
	applicationapimodels "labourlink-backend/models/api/application"
	dbmodels "labourlink-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const applyLockWait = 5 * time.Second

type Provider interface {
	Apply(workerID, vacancyID, ownerID, workerName string) (id string, err error)
	Withdraw(workerID, vacancyID string) error
	Decide(ownerID, applicationID string, req applicationapimodels.DecideRequest) (item applicationapimodels.ApplicationView, err error)
	ListForVacancy(ownerID, vacancyID string) (list []applicationapimodels.ApplicationView, err error)
	ListForWorker(workerID string) (list []applicationapimodels.MyApplicationView, err error)
	AppliedVacancyIDs(workerID string) (ids []string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"contactpolicy", contactpolicy.Instance,
		"notificationhandler", notificationhandler.Instance,
	)
	Instance = NewInstance(
		applicationstore.NewInstance(db.DB),
		vacancystore.NewInstance(db.DB),
		profilestore.NewInstance(db.DB),
		contactpolicy.Instance,
		notificationhandler.Instance,
		time.Now,
	)
}

func NewInstance(store applicationstore.Provider,
	vacancyStore vacancystore.Provider,
	profileStore profilestore.Provider,
	contact contactpolicy.Provider,
	notification notificationhandler.Provider,
	now func() time.Time) Provider {
	return impl{
		store:        store,
		vacancyStore: vacancyStore,
		profileStore: profileStore,
		contact:      contact,
		notification: notification,
		now:          now,
	}
}

type impl struct {
	store        applicationstore.Provider
	vacancyStore vacancystore.Provider
	profileStore profilestore.Provider
	contact      contactpolicy.Provider
	notification notificationhandler.Provider
	now          func() time.Time
}

func (i impl) getLogger(vacancyID, applicationID string) *log.Entry {
	logger := log.WithField("vacancy_id", vacancyID)
	if applicationID != "" {
		logger = logger.WithField("application_id", applicationID)
	}
	return logger
}

func (i impl) Apply(workerID, vacancyID, ownerID, workerName string) (id string, err error) {
	if workerID == "" || vacancyID == "" {
		return "", apperrors.NewValidation("worker id and vacancy id are required")
	}
	logger := i.getLogger(vacancyID, "").WithField("worker_id", workerID)
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return "", apperrors.Transient(err, "failed to load vacancy")
	}
	if vacancy == nil {
		return "", apperrors.NewNotFound("vacancy not found")
	}
	if !vacancy.IsOpenForWorkers(i.now()) {
		return "", apperrors.NewValidation("vacancy is not open for applications")
	}
	if ownerID == "" {
		ownerID = vacancy.OwnerID
	}
	if ownerID != vacancy.OwnerID {
		return "", apperrors.NewValidation("owner id does not match the vacancy")
	}
	workerName = strings.TrimSpace(workerName)
	if workerName == "" {
		worker, err := i.profileStore.GetWorker(workerID)
		if err != nil {
			return "", apperrors.Transient(err, "failed to load worker profile")
		}
		if worker != nil {
			workerName = worker.Name
		}
	}
	if workerName == "" {
		return "", apperrors.NewValidation("worker name is required")
	}

	lockKey := "apply:" + workerID + ":" + vacancyID
	success, err := lock.WithDelay(context.TODO(), lockKey, applyLockWait, func() error {
		existing, err := i.store.FindByWorkerAndVacancy(workerID, vacancyID)
		if err != nil {
			return apperrors.Transient(err, "failed to check existing application")
		}
		if existing != nil {
			return apperrors.NewConflict("already applied to this vacancy")
		}
		id, err = i.store.Create(dbmodels.Application{
			WorkerID:   workerID,
			VacancyID:  vacancyID,
			OwnerID:    ownerID,
			WorkerName: workerName,
			Status:     models.ApplicationStatusPending,
		})
		if err != nil {
			if errors.Is(err, applicationstore.ErrDuplicate) {
				return apperrors.NewConflict("already applied to this vacancy")
			}
			return apperrors.Transient(err, "failed to create application")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if !success {
		return "", apperrors.NewConflict("application is being processed, try again")
	}
	logger.WithField("application_id", id).Info("worker applied")
	i.notification.SendNotification(ownerID, models.GetPushNewApplication(vacancy.JobTitle, workerName))
	return id, nil
}

// Withdraw deletes the worker's applications for the vacancy. Counters are
// left as they are, even for an accepted application.
func (i impl) Withdraw(workerID, vacancyID string) error {
	if workerID == "" || vacancyID == "" {
		return apperrors.NewValidation("worker id and vacancy id are required")
	}
	deleted, err := i.store.DeleteByWorkerAndVacancy(workerID, vacancyID)
	if err != nil {
		return apperrors.Transient(err, "failed to withdraw application")
	}
	if deleted > 0 {
		i.getLogger(vacancyID, "").
			WithField("worker_id", workerID).
			WithField("deleted", deleted).
			Info("application withdrawn")
	}
	return nil
}

func (i impl) Decide(ownerID, applicationID string, req applicationapimodels.DecideRequest) (applicationapimodels.ApplicationView, error) {
	empty := applicationapimodels.ApplicationView{}
	if err := req.Validate(); err != nil {
		return empty, apperrors.NewValidation(err.Error())
	}
	app, err := i.store.GetByID(applicationID)
	if err != nil {
		return empty, apperrors.Transient(err, "failed to load application")
	}
	if app == nil {
		return empty, apperrors.NewNotFound("application not found")
	}
	if ownerID == "" || app.OwnerID != ownerID {
		return empty, apperrors.NewAuthorization("application belongs to another owner")
	}
	if req.WorkerID != "" && req.WorkerID != app.WorkerID {
		return empty, apperrors.NewValidation("worker id does not match the application")
	}
	logger := i.getLogger(app.VacancyID, app.ID).
		WithField("from", req.CurrentStatus).
		WithField("to", req.Status)

	from := req.CurrentStatus
	if from == "" {
		from = app.Status
	}
	delta := from.CountDelta(req.Status)

	vacancy, err := i.vacancyStore.GetByID(app.VacancyID)
	if err != nil {
		return empty, apperrors.Transient(err, "failed to load vacancy")
	}
	if vacancy != nil && delta < 0 && vacancy.WorkerCount <= 0 {
		return empty, apperrors.NewValidation("all positions are already filled")
	}

	if from != req.Status || app.Status != req.Status {
		updated, err := i.store.UpdateStatus(app.ID, from, req.Status)
		if err != nil {
			return empty, apperrors.Transient(err, "failed to update application status")
		}
		if !updated {
			return empty, apperrors.NewConflict("application status has changed, refresh and try again")
		}
	}

	if delta != 0 {
		if vacancy == nil {
			logger.Warn("vacancy not found, counters not adjusted")
		} else {
			found, err := i.vacancyStore.AdjustCounts(app.VacancyID, delta)
			switch {
			case errors.Is(err, vacancystore.ErrCounterOutOfRange):
				if _, revertErr := i.store.UpdateStatus(app.ID, req.Status, from); revertErr != nil {
					logger.WithError(revertErr).Error("failed to revert application status")
				}
				return empty, apperrors.NewConflict("vacancy counters have changed, refresh and try again")
			case err != nil:
				logger.WithError(err).Error("application status saved, counters not adjusted")
				return empty, apperrors.Transient(err, "failed to adjust vacancy counters")
			case !found:
				logger.Warn("vacancy removed, counters not adjusted")
			}
		}
	}
	logger.WithField("count_delta", delta).Info("application decided")

	if req.Status.IsAccepted() && !from.IsAccepted() {
		jobTitle, companyName := "", ""
		if vacancy != nil {
			jobTitle = vacancy.JobTitle
			companyName = vacancy.GetCompanyName()
		}
		i.notification.SendNotification(app.WorkerID, models.GetPushApplicationAccepted(jobTitle, companyName))
	}

	app.Status = req.Status
	phone, err := i.contact.Disclose(app.Status, app.WorkerID)
	if err != nil {
		return empty, err
	}
	return applicationapimodels.ApplicationConvert(*app, phone), nil
}

func (i impl) ListForVacancy(ownerID, vacancyID string) ([]applicationapimodels.ApplicationView, error) {
	vacancy, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load vacancy")
	}
	if vacancy == nil {
		return nil, apperrors.NewNotFound("vacancy not found")
	}
	if ownerID == "" || vacancy.OwnerID != ownerID {
		return nil, apperrors.NewAuthorization("vacancy belongs to another owner")
	}
	list, err := i.store.ListByVacancy(vacancyID)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load applications")
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		phone, err := i.contact.Disclose(rec.Status, rec.WorkerID)
		if err != nil {
			return nil, err
		}
		result = append(result, applicationapimodels.ApplicationConvert(rec, phone))
	}
	return result, nil
}

func (i impl) ListForWorker(workerID string) ([]applicationapimodels.MyApplicationView, error) {
	list, err := i.store.ListByWorker(workerID)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load applications")
	}
	result := make([]applicationapimodels.MyApplicationView, 0, len(list))
	for _, rec := range list {
		phone, err := i.contact.Disclose(rec.Status, rec.OwnerID)
		if err != nil {
			return nil, err
		}
		result = append(result, applicationapimodels.MyApplicationConvert(rec, phone))
	}
	return result, nil
}

func (i impl) AppliedVacancyIDs(workerID string) ([]string, error) {
	list, err := i.store.ListByWorker(workerID)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load applications")
	}
	ids := make([]string, 0, len(list))
	for _, rec := range list {
		ids = append(ids, rec.VacancyID)
	}
	return ids, nil
}
