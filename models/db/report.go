package dbmodels

import "labourlink-backend/models"

type ReportStatus string

const (
	ReportStatusOpen     ReportStatus = "open"
	ReportStatusReviewed ReportStatus = "reviewed"
)

type Report struct {
	BaseModel
	FromID     string          `gorm:"type:varchar(128);index:idx_report_from"`
	ToID       string          `gorm:"type:varchar(128);index:idx_report_to"`
	TargetRole models.UserRole `gorm:"type:varchar(20)"`
	Reason     string
	Status     ReportStatus `gorm:"type:varchar(20)"`
}
