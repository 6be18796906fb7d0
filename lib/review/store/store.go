package reviewstore

import (
	dbmodels "labourlink-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrDuplicate = errors.New("review already exists")

type Provider interface {
	Create(rec dbmodels.Review) (id string, err error)
	Exists(fromID, toID string) (bool, error)
	ListFor(toID string) ([]dbmodels.Review, error)
	AverageFor(toID string) (float64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Review) (string, error) {
	err := i.db.
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

func (i impl) Exists(fromID, toID string) (exists bool, err error) {
	err = i.db.Model(&dbmodels.Review{}).
		Select("count(*) > 0").
		Where("from_id = ?", fromID).
		Where("to_id = ?", toID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) ListFor(toID string) (list []dbmodels.Review, err error) {
	err = i.db.
		Model(dbmodels.Review{}).
		Where("to_id = ?", toID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) AverageFor(toID string) (avg float64, err error) {
	err = i.db.
		Model(dbmodels.Review{}).
		Select("coalesce(avg(rating), 0)").
		Where("to_id = ?", toID).
		Scan(&avg).
		Error
	return avg, err
}
