package applicationstore

import (
	"labourlink-backend/models"
	dbmodels "labourlink-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrDuplicate is returned when the worker already holds an application for the vacancy.
var ErrDuplicate = errors.New("application already exists")

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	FindByWorkerAndVacancy(workerID, vacancyID string) (rec *dbmodels.Application, err error)
	UpdateStatus(id string, from, to models.ApplicationStatus) (updated bool, err error)
	DeleteByWorkerAndVacancy(workerID, vacancyID string) (deleted int64, err error)
	ListByVacancy(vacancyID string) (list []dbmodels.Application, err error)
	ListByWorker(workerID string) (list []dbmodels.Application, err error)
	AcceptedCounts() (list []dbmodels.AcceptedCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", ErrDuplicate
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByWorkerAndVacancy(workerID, vacancyID string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("worker_id = ?", workerID).
		Where("vacancy_id = ?", vacancyID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// UpdateStatus is a compare-and-set: the row is only written while it still holds from.
func (i impl) UpdateStatus(id string, from, to models.ApplicationStatus) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Where("status = ?", from).
		Update("status", to)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) DeleteByWorkerAndVacancy(workerID, vacancyID string) (deleted int64, err error) {
	tx := i.db.
		Where("worker_id = ?", workerID).
		Where("vacancy_id = ?", vacancyID).
		Delete(&dbmodels.Application{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) ListByVacancy(vacancyID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Order("created_at desc").
		Preload("Worker").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByWorker(workerID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("worker_id = ?", workerID).
		Order("created_at desc").
		Preload("Vacancy").
		Preload("Owner").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AcceptedCounts() (list []dbmodels.AcceptedCount, err error) {
	list = []dbmodels.AcceptedCount{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Select("vacancy_id, count(*) as total").
		Where("status = ?", models.ApplicationStatusAccepted).
		Group("vacancy_id").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
