package profilestore

import (
	dbmodels "labourlink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	GetUser(id string) (rec *dbmodels.User, err error)
	SaveUser(rec dbmodels.User) error
	UpdateUser(id string, updMap map[string]interface{}) error
	GetWorker(id string) (rec *dbmodels.WorkerProfile, err error)
	SaveWorker(rec dbmodels.WorkerProfile) error
	GetOwner(id string) (rec *dbmodels.OwnerProfile, err error)
	SaveOwner(rec dbmodels.OwnerProfile) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetUser(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	if err := i.first(&rec, id); err != nil || rec.ID == "" {
		return nil, err
	}
	return &rec, nil
}

func (i impl) SaveUser(rec dbmodels.User) error {
	return i.db.Omit(clause.Associations).Save(&rec).Error
}

func (i impl) UpdateUser(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return err
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetWorker(id string) (*dbmodels.WorkerProfile, error) {
	rec := dbmodels.WorkerProfile{}
	if err := i.first(&rec, id); err != nil || rec.ID == "" {
		return nil, err
	}
	return &rec, nil
}

func (i impl) SaveWorker(rec dbmodels.WorkerProfile) error {
	return i.db.Save(&rec).Error
}

func (i impl) GetOwner(id string) (*dbmodels.OwnerProfile, error) {
	rec := dbmodels.OwnerProfile{}
	if err := i.first(&rec, id); err != nil || rec.ID == "" {
		return nil, err
	}
	return &rec, nil
}

func (i impl) SaveOwner(rec dbmodels.OwnerProfile) error {
	return i.db.Save(&rec).Error
}

func (i impl) first(dest interface{}, id string) error {
	err := i.db.
		Where("id = ?", id).
		First(dest).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
