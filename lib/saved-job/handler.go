package savedjobhandler

import (
	"labourlink-backend/db"
	savedjobstore "labourlink-backend/lib/saved-job/store"
	apperrors "labourlink-backend/lib/utils/app-errors"
	vacancystore "labourlink-backend/lib/vacancy/store"
	vacancyapimodels "labourlink-backend/models/api/vacancy"
	"time"
)

type Provider interface {
	Save(workerID, vacancyID string) error
	Remove(workerID, vacancyID string) error
	List(workerID string) ([]vacancyapimodels.VacancyView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(savedjobstore.NewInstance(db.DB), vacancystore.NewInstance(db.DB), time.Now)
}

func NewInstance(store savedjobstore.Provider, vacancyStore vacancystore.Provider, now func() time.Time) Provider {
	return impl{
		store:        store,
		vacancyStore: vacancyStore,
		now:          now,
	}
}

type impl struct {
	store        savedjobstore.Provider
	vacancyStore vacancystore.Provider
	now          func() time.Time
}

func (i impl) Save(workerID, vacancyID string) error {
	rec, err := i.vacancyStore.GetByID(vacancyID)
	if err != nil {
		return apperrors.Transient(err, "failed to load vacancy")
	}
	if rec == nil {
		return apperrors.NewNotFound("vacancy not found")
	}
	return apperrors.Transient(i.store.Save(workerID, vacancyID), "failed to save job")
}

func (i impl) Remove(workerID, vacancyID string) error {
	return apperrors.Transient(i.store.Remove(workerID, vacancyID), "failed to remove saved job")
}

// List skips bookmarks whose vacancy no longer exists.
func (i impl) List(workerID string) ([]vacancyapimodels.VacancyView, error) {
	list, err := i.store.List(workerID)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load saved jobs")
	}
	now := i.now()
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		if rec.Vacancy == nil {
			continue
		}
		result = append(result, vacancyapimodels.VacancyConvert(*rec.Vacancy, now))
	}
	return result, nil
}
