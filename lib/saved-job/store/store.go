package savedjobstore

import (
	dbmodels "labourlink-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(workerID, vacancyID string) error
	Remove(workerID, vacancyID string) error
	List(workerID string) ([]dbmodels.SavedJob, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(workerID, vacancyID string) error {
	rec := dbmodels.SavedJob{
		WorkerID:  workerID,
		VacancyID: vacancyID,
	}
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return nil
		}
		return errors.Wrap(err, "failed to save job")
	}
	return nil
}

func (i impl) Remove(workerID, vacancyID string) error {
	err := i.db.
		Where("worker_id = ?", workerID).
		Where("vacancy_id = ?", vacancyID).
		Delete(&dbmodels.SavedJob{}).
		Error
	if err != nil {
		return errors.Wrap(err, "failed to remove saved job")
	}
	return nil
}

func (i impl) List(workerID string) (list []dbmodels.SavedJob, err error) {
	err = i.db.
		Model(dbmodels.SavedJob{}).
		Where("worker_id = ?", workerID).
		Order("created_at desc").
		Preload("Vacancy").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
