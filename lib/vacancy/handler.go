package vacancyhandler

import (
	"labourlink-backend/db"
	profilestore "labourlink-backend/lib/profile/store"
	apperrors "labourlink-backend/lib/utils/app-errors"
	vacancystore "labourlink-backend/lib/vacancy/store"
	"labourlink-backend/models"
	vacancyapimodels "labourlink-backend/models/api/vacancy"
	dbmodels "labourlink-backend/models/db"
	"time"

	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Post(ownerID string, data vacancyapimodels.VacancyData) (id string, err error)
	Edit(ownerID, id string, data vacancyapimodels.VacancyData) error
	SetStatus(ownerID, id string, status models.VacancyStatus) error
	Renew(ownerID, id string) error
	GetByID(id string) (item vacancyapimodels.VacancyView, err error)
	ListForOwner(ownerID string) (list []vacancyapimodels.VacancyView, err error)
	ListActiveForWorkers(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, err error)
	// GetOwned returns the vacancy when ownerID owns it.
	GetOwned(ownerID, id string) (rec *dbmodels.Vacancy, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(vacancystore.NewInstance(db.DB), profilestore.NewInstance(db.DB), time.Now)
}

func NewInstance(store vacancystore.Provider, profileStore profilestore.Provider, now func() time.Time) Provider {
	return impl{
		store:        store,
		profileStore: profileStore,
		now:          now,
	}
}

type impl struct {
	store        vacancystore.Provider
	profileStore profilestore.Provider
	now          func() time.Time
}

func (i impl) getLogger(ownerID, vacancyID string) *log.Entry {
	logger := log.WithField("owner_id", ownerID)
	if vacancyID != "" {
		logger = logger.WithField("vacancy_id", vacancyID)
	}
	return logger
}

func (i impl) Post(ownerID string, data vacancyapimodels.VacancyData) (id string, err error) {
	logger := i.getLogger(ownerID, "")
	if ownerID == "" {
		return "", apperrors.NewValidation("owner id is required")
	}
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	owner, err := i.profileStore.GetOwner(ownerID)
	if err != nil {
		return "", apperrors.Transient(err, "failed to load owner profile")
	}
	if owner == nil {
		return "", apperrors.NewValidation("owner profile is not set up")
	}
	rec := dbmodels.Vacancy{
		OwnerID:        ownerID,
		JobTitle:       data.JobTitle,
		Description:    data.Description,
		Location:       data.Location,
		Salary:         data.Salary,
		RequiredCount:  data.RequiredCount,
		WorkerCount:    data.RequiredCount,
		FilledCount:    0,
		Accommodation:  data.Accommodation,
		Water:          data.Water,
		RequiredSkills: pq.StringArray(data.Skills()),
		Status:         models.VacancyStatusActive,
	}
	rec.CreatedAt = i.now()
	id, err = i.store.Create(rec)
	if err != nil {
		return "", apperrors.Transient(err, "failed to create vacancy")
	}
	logger.
		WithField("vacancy_id", id).
		WithField("worker_count", rec.WorkerCount).
		Info("vacancy posted")
	return id, nil
}

// Edit overwrites descriptive fields only. worker_count and filled_count are
// moved by application decisions alone, so required_count here is informational.
func (i impl) Edit(ownerID, id string, data vacancyapimodels.VacancyData) error {
	if err := data.Validate(); err != nil {
		return apperrors.NewValidation(err.Error())
	}
	if _, err := i.GetOwned(ownerID, id); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"job_title":       data.JobTitle,
		"description":     data.Description,
		"location":        data.Location,
		"salary":          data.Salary,
		"required_count":  data.RequiredCount,
		"accommodation":   data.Accommodation,
		"water":           data.Water,
		"required_skills": pq.StringArray(data.Skills()),
	}
	if err := i.store.Update(id, updMap); err != nil {
		return apperrors.Transient(err, "failed to update vacancy")
	}
	i.getLogger(ownerID, id).Info("vacancy edited")
	return nil
}

func (i impl) SetStatus(ownerID, id string, status models.VacancyStatus) error {
	if !status.IsValid() {
		return apperrors.Validationf("unknown vacancy status: %v", status)
	}
	rec, err := i.GetOwned(ownerID, id)
	if err != nil {
		return err
	}
	if rec.Status == status {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return apperrors.Transient(err, "failed to change vacancy status")
	}
	i.getLogger(ownerID, id).
		WithField("status", status).
		Info("vacancy status changed")
	return nil
}

func (i impl) Renew(ownerID, id string) error {
	if _, err := i.GetOwned(ownerID, id); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"created_at": i.now(),
		"status":     models.VacancyStatusActive,
	}
	if err := i.store.Update(id, updMap); err != nil {
		return apperrors.Transient(err, "failed to renew vacancy")
	}
	i.getLogger(ownerID, id).Info("vacancy renewed")
	return nil
}

func (i impl) GetByID(id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, apperrors.Transient(err, "failed to load vacancy")
	}
	if rec == nil {
		return vacancyapimodels.VacancyView{}, apperrors.NewNotFound("vacancy not found")
	}
	return vacancyapimodels.VacancyConvert(*rec, i.now()), nil
}

func (i impl) ListForOwner(ownerID string) ([]vacancyapimodels.VacancyView, error) {
	list, err := i.store.List(dbmodels.VacancyFilter{
		OwnerID:       ownerID,
		CreatedAtDesc: true,
	})
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load vacancies")
	}
	now := i.now()
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, vacancyapimodels.VacancyConvert(rec, now))
	}
	return result, nil
}

func (i impl) ListActiveForWorkers(filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, error) {
	now := i.now()
	page, limit := filter.GetPage()
	list, err := i.store.List(dbmodels.VacancyFilter{
		Status:        models.VacancyStatusActive,
		CreatedSince:  now.Add(-models.VacancyLifetime),
		Search:        filter.Search,
		Skill:         filter.Skill,
		CreatedAtDesc: true,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load vacancies")
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		if !rec.IsOpenForWorkers(now) {
			continue
		}
		result = append(result, vacancyapimodels.VacancyConvert(rec, now))
	}
	return result, nil
}

func (i impl) GetOwned(ownerID, id string) (*dbmodels.Vacancy, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load vacancy")
	}
	if rec == nil {
		return nil, apperrors.NewNotFound("vacancy not found")
	}
	if ownerID == "" || rec.OwnerID != ownerID {
		return nil, apperrors.NewAuthorization("vacancy belongs to another owner")
	}
	return rec, nil
}
