package dbmodels

import (
	"labourlink-backend/models"
	"time"

	"github.com/lib/pq"
)

type Vacancy struct {
	BaseModel
	OwnerID        string        `gorm:"type:varchar(128);index:idx_owner"`
	Owner          *OwnerProfile `gorm:"foreignKey:OwnerID"`
	JobTitle       string        `gorm:"type:varchar(255)"`
	Description    string
	Location       string `gorm:"type:varchar(255)"`
	Salary         int
	RequiredCount  int
	WorkerCount    int                  // remaining need
	FilledCount    int                  // accepted so far
	Accommodation  models.Facility      `gorm:"type:varchar(20)"`
	Water          models.Facility      `gorm:"type:varchar(20)"`
	RequiredSkills pq.StringArray       `gorm:"type:text[]"`
	Status         models.VacancyStatus `gorm:"type:varchar(20);index:idx_status"`
}

// IsExpired is a pure function of the posting age.
func (v Vacancy) IsExpired(now time.Time) bool {
	return now.Sub(v.CreatedAt) > models.VacancyLifetime
}

// IsOpenForWorkers reports whether workers can see and apply to the vacancy.
func (v Vacancy) IsOpenForWorkers(now time.Time) bool {
	return v.Status == models.VacancyStatusActive && !v.IsExpired(now)
}

// TotalCount is the conserved headcount: remaining plus filled.
func (v Vacancy) TotalCount() int {
	return v.WorkerCount + v.FilledCount
}

// VacancyCounts is the pair of headcount counters kept on a vacancy.
type VacancyCounts struct {
	WorkerCount int
	FilledCount int
}

func (v Vacancy) Counts() VacancyCounts {
	return VacancyCounts{WorkerCount: v.WorkerCount, FilledCount: v.FilledCount}
}

func (v Vacancy) GetCompanyName() string {
	if v.Owner == nil {
		return ""
	}
	return v.Owner.CompanyName
}

type VacancyFilter struct {
	OwnerID       string
	Status        models.VacancyStatus
	CreatedSince  time.Time
	Search        string
	Skill         string
	CreatedAtDesc bool
	Page          int
	Limit         int
}
