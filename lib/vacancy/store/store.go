package vacancystore

import (
	dbmodels "labourlink-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCounterOutOfRange is returned when a counter change would drive
// worker_count or filled_count below zero.
var ErrCounterOutOfRange = errors.New("vacancy counters out of range")

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	Update(id string, updMap map[string]interface{}) error
	AdjustCounts(id string, delta int) (found bool, err error)
	SetCounts(id string, from, to dbmodels.VacancyCounts) (updated bool, err error)
	List(filter dbmodels.VacancyFilter) (list []dbmodels.Vacancy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
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

// AdjustCounts moves delta between worker_count and filled_count in a single
// statement, so concurrent decisions cannot lose updates.
func (i impl) AdjustCounts(id string, delta int) (found bool, err error) {
	if delta == 0 {
		return true, nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Where("worker_count + ? >= 0", delta).
		Where("filled_count - ? >= 0", delta).
		Updates(map[string]interface{}{
			"worker_count": gorm.Expr("worker_count + ?", delta),
			"filled_count": gorm.Expr("filled_count - ?", delta),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected != 0 {
		return true, nil
	}
	var exists bool
	err = i.db.Model(&dbmodels.Vacancy{}).
		Select("count(*) > 0").
		Where("id = ?", id).
		Find(&exists).
		Error
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	return true, ErrCounterOutOfRange
}

// SetCounts writes to only while the row still holds the from counters.
func (i impl) SetCounts(id string, from, to dbmodels.VacancyCounts) (updated bool, err error) {
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Where("worker_count = ? AND filled_count = ?", from.WorkerCount, from.FilledCount).
		Updates(map[string]interface{}{
			"worker_count": to.WorkerCount,
			"filled_count": to.FilledCount,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) List(filter dbmodels.VacancyFilter) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(dbmodels.Vacancy{})
	i.addFilter(tx, filter)
	err = tx.Preload(clause.Associations).Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.VacancyFilter) {
	if filter.OwnerID != "" {
		tx.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	if !filter.CreatedSince.IsZero() {
		tx.Where("created_at >= ?", filter.CreatedSince)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(job_title) like ? or LOWER(location) like ?", searchValue, searchValue)
	}
	if filter.Skill != "" {
		tx.Where("? = ANY(required_skills)", filter.Skill)
	}
	if filter.CreatedAtDesc {
		tx.Order("created_at desc")
	} else {
		tx.Order("created_at asc")
	}
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		tx.Limit(filter.Limit).Offset((page - 1) * filter.Limit)
	}
}
