package dbmodels

import (
	"labourlink-backend/models"
)

type Application struct {
	BaseModel
	WorkerID   string                   `gorm:"type:varchar(128);uniqueIndex:idx_worker_vacancy;index:idx_worker"`
	Worker     *WorkerProfile           `gorm:"foreignKey:WorkerID"`
	VacancyID  string                   `gorm:"type:varchar(36);uniqueIndex:idx_worker_vacancy;index:idx_vacancy"`
	Vacancy    *Vacancy                 `gorm:"foreignKey:VacancyID"`
	OwnerID    string                   `gorm:"type:varchar(128);index:idx_app_owner"`
	Owner      *OwnerProfile            `gorm:"foreignKey:OwnerID"`
	WorkerName string                   `gorm:"type:varchar(255)"`
	Status     models.ApplicationStatus `gorm:"type:varchar(20)"`
}

type AcceptedCount struct {
	VacancyID string
	Total     int
}
