package dbmodels

import "labourlink-backend/models"

type Review struct {
	BaseModel
	FromID     string `gorm:"type:varchar(128);uniqueIndex:idx_review_pair"`
	ToID       string `gorm:"type:varchar(128);uniqueIndex:idx_review_pair;index:idx_review_to"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string
	TargetRole models.UserRole `gorm:"type:varchar(20)"`
}
