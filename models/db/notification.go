package dbmodels

import "labourlink-backend/models"

type Notification struct {
	BaseModel
	ToUserID string          `gorm:"type:varchar(128);index:idx_to_user"`
	Code     models.PushCode `gorm:"type:varchar(64)"`
	Title    string          `gorm:"type:varchar(255)"`
	Msg      string
	IsRead   bool `gorm:"index:idx_to_user"`
}
