package dbmodels

import "time"

type SavedJob struct {
	WorkerID  string   `gorm:"primaryKey;type:varchar(128)"`
	VacancyID string   `gorm:"primaryKey;type:varchar(36)"`
	Vacancy   *Vacancy `gorm:"foreignKey:VacancyID"`
	CreatedAt time.Time
}
