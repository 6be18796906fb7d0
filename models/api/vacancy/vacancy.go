package vacancyapimodels

import (
	"labourlink-backend/models"
	apimodels "labourlink-backend/models/api"
	dbmodels "labourlink-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type VacancyData struct {
	JobTitle       string          `json:"job_title"`
	Description    string          `json:"description"`
	Location       string          `json:"location"` // free text
	Salary         int             `json:"salary"`
	RequiredCount  int             `json:"required_count"` // headcount requested
	Accommodation  models.Facility `json:"accommodation"`
	Water          models.Facility `json:"water"`
	RequiredSkills []string        `json:"required_skills"`
}

func (v VacancyData) Validate() error {
	if strings.TrimSpace(v.JobTitle) == "" {
		return errors.New("job title is required")
	}
	if strings.TrimSpace(v.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(v.Location) == "" {
		return errors.New("location is required")
	}
	if v.Salary <= 0 {
		return errors.New("salary must be positive")
	}
	if v.RequiredCount < 1 {
		return errors.New("required worker count must be at least 1")
	}
	if !v.Accommodation.IsValid() {
		return errors.Errorf("unknown accommodation value: %v", v.Accommodation)
	}
	if !v.Water.IsValid() {
		return errors.Errorf("unknown water value: %v", v.Water)
	}
	return nil
}

func (v VacancyData) Skills() []string {
	return models.NormalizeSkills(v.RequiredSkills)
}

type StatusChangeRequest struct {
	Status models.VacancyStatus `json:"status"`
}

func (s StatusChangeRequest) Validate() error {
	if !s.Status.IsValid() {
		return errors.Errorf("unknown vacancy status: %v", s.Status)
	}
	return nil
}

type VacancyView struct {
	VacancyData
	ID          string               `json:"id"`
	OwnerID     string               `json:"owner_id"`
	CompanyName string               `json:"company_name"`
	WorkerCount int                  `json:"worker_count"` // remaining need
	FilledCount int                  `json:"filled_count"`
	Status      models.VacancyStatus `json:"status"`
	IsExpired   bool                 `json:"is_expired"`
	CreatedAt   time.Time            `json:"created_at"`
}

func VacancyConvert(rec dbmodels.Vacancy, now time.Time) VacancyView {
	return VacancyView{
		VacancyData: VacancyData{
			JobTitle:       rec.JobTitle,
			Description:    rec.Description,
			Location:       rec.Location,
			Salary:         rec.Salary,
			RequiredCount:  rec.RequiredCount,
			Accommodation:  rec.Accommodation,
			Water:          rec.Water,
			RequiredSkills: rec.RequiredSkills,
		},
		ID:          rec.ID,
		OwnerID:     rec.OwnerID,
		CompanyName: rec.GetCompanyName(),
		WorkerCount: rec.WorkerCount,
		FilledCount: rec.FilledCount,
		Status:      rec.Status,
		IsExpired:   rec.IsExpired(now),
		CreatedAt:   rec.CreatedAt,
	}
}

// OwnerVacancies is the owner's dashboard split into live and expired postings.
type OwnerVacancies struct {
	Active  []VacancyView `json:"active"`
	Expired []VacancyView `json:"expired"`
}

func PartitionForOwner(list []VacancyView) OwnerVacancies {
	result := OwnerVacancies{
		Active:  []VacancyView{},
		Expired: []VacancyView{},
	}
	for _, item := range list {
		if item.IsExpired {
			result.Expired = append(result.Expired, item)
			continue
		}
		result.Active = append(result.Active, item)
	}
	return result
}

type VacancyFilter struct {
	Search string `json:"search"` // matches job title or location
	Skill  string `json:"skill"`
	apimodels.Pagination
}

type DescriptionDraftRequest struct {
	JobTitle string   `json:"job_title"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

func (d DescriptionDraftRequest) Validate() error {
	if strings.TrimSpace(d.JobTitle) == "" {
		return errors.New("job title is required")
	}
	return nil
}

type DescriptionDraft struct {
	Description string `json:"description"`
}
