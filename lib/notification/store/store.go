package notificationstore

import (
	dbmodels "labourlink-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	List(userID string) ([]dbmodels.Notification, error)
	MarkRead(userID, id string) (found bool, err error)
	UnreadCount(userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("to_user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(userID, id string) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("to_user_id = ?", userID).
		Update("is_read", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) UnreadCount(userID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("to_user_id = ?", userID).
		Where("is_read = ?", false).
		Count(&count).
		Error
	return count, err
}
