package applicationapimodels

import (
	"labourlink-backend/models"
	dbmodels "labourlink-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type ApplyRequest struct {
	VacancyID  string `json:"vacancy_id"`
	OwnerID    string `json:"owner_id"`    // optional, taken from the vacancy when empty
	WorkerName string `json:"worker_name"` // optional, taken from the worker profile when empty
}

func (a ApplyRequest) Validate() error {
	if strings.TrimSpace(a.VacancyID) == "" {
		return errors.New("vacancy id is required")
	}
	return nil
}

type DecideRequest struct {
	Status        models.ApplicationStatus `json:"status"`         // accepted or rejected
	WorkerID      string                   `json:"worker_id"`      // optional consistency check
	CurrentStatus models.ApplicationStatus `json:"current_status"` // status the caller saw; empty means "whatever is stored"
}

func (d DecideRequest) Validate() error {
	if !d.Status.IsDecision() {
		return errors.Errorf("status must be accepted or rejected, got: %v", d.Status)
	}
	if d.CurrentStatus != "" && !d.CurrentStatus.IsKnown() {
		return errors.Errorf("unknown current status: %v", d.CurrentStatus)
	}
	return nil
}

type WorkerSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	State    string   `json:"state"`
	District string   `json:"district"`
	Skills   []string `json:"skills"`
	Verified bool     `json:"verified"`
}

// ApplicationView is what the owner sees for an applicant.
type ApplicationView struct {
	ID          string                   `json:"id"`
	VacancyID   string                   `json:"vacancy_id"`
	WorkerID    string                   `json:"worker_id"`
	WorkerName  string                   `json:"worker_name"`
	Status      models.ApplicationStatus `json:"status"`
	StatusName  string                   `json:"status_name"`
	Worker      *WorkerSummary           `json:"worker,omitempty"`
	WorkerPhone *string                  `json:"worker_phone,omitempty"` // only for accepted applications
	CreatedAt   time.Time                `json:"created_at"`
}

func ApplicationConvert(rec dbmodels.Application, phone *string) ApplicationView {
	result := ApplicationView{
		ID:          rec.ID,
		VacancyID:   rec.VacancyID,
		WorkerID:    rec.WorkerID,
		WorkerName:  rec.WorkerName,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		WorkerPhone: phone,
		CreatedAt:   rec.CreatedAt,
	}
	if rec.Worker != nil {
		result.Worker = &WorkerSummary{
			ID:       rec.Worker.ID,
			Name:     rec.Worker.Name,
			Age:      rec.Worker.Age,
			State:    rec.Worker.State,
			District: rec.Worker.District,
			Skills:   rec.Worker.Skills,
			Verified: rec.Worker.Verified,
		}
	}
	return result
}

// MyApplicationView is what the worker sees for one of their applications.
type MyApplicationView struct {
	ID          string                   `json:"id"`
	VacancyID   string                   `json:"vacancy_id"`
	OwnerID     string                   `json:"owner_id"`
	JobTitle    string                   `json:"job_title"`
	Location    string                   `json:"location"`
	Salary      int                      `json:"salary"`
	CompanyName string                   `json:"company_name"`
	Status      models.ApplicationStatus `json:"status"`
	StatusName  string                   `json:"status_name"`
	OwnerPhone  *string                  `json:"owner_phone,omitempty"` // only for accepted applications
	CreatedAt   time.Time                `json:"created_at"`
}

func MyApplicationConvert(rec dbmodels.Application, phone *string) MyApplicationView {
	result := MyApplicationView{
		ID:         rec.ID,
		VacancyID:  rec.VacancyID,
		OwnerID:    rec.OwnerID,
		Status:     rec.Status,
		StatusName: rec.Status.ToHuman(),
		OwnerPhone: phone,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.Vacancy != nil {
		result.JobTitle = rec.Vacancy.JobTitle
		result.Location = rec.Vacancy.Location
		result.Salary = rec.Vacancy.Salary
	}
	if rec.Owner != nil {
		result.CompanyName = rec.Owner.CompanyName
	}
	return result
}
