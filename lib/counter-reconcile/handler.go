package counterreconcile

import (
	"context"
	"labourlink-backend/db"
	applicationstore "labourlink-backend/lib/application/store"
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/lib/utils/helpers"
	vacancystore "labourlink-backend/lib/vacancy/store"
	dbmodels "labourlink-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Drift is a vacancy whose filled_count differs from its accepted applications.
type Drift struct {
	VacancyID   string `json:"vacancy_id"`
	JobTitle    string `json:"job_title"`
	WorkerCount int    `json:"worker_count"`
	FilledCount int    `json:"filled_count"`
	Accepted    int    `json:"accepted"`
	Fixed       bool   `json:"fixed"`
}

type Provider interface {
	// Check reports every drifting vacancy. With fix it rewrites the counters
	// to filled = accepted and worker = total - accepted, never below zero.
	// A vacancy whose counters moved after they were read is left as is.
	Check(ctx context.Context, fix bool) ([]Drift, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(vacancystore.NewInstance(db.DB), applicationstore.NewInstance(db.DB))
}

func NewInstance(vacancyStore vacancystore.Provider, applicationStore applicationstore.Provider) Provider {
	return impl{
		vacancyStore:     vacancyStore,
		applicationStore: applicationStore,
	}
}

type impl struct {
	vacancyStore     vacancystore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) Check(ctx context.Context, fix bool) ([]Drift, error) {
	counts, err := i.applicationStore.AcceptedCounts()
	if err != nil {
		return nil, apperrors.Transient(err, "failed to count accepted applications")
	}
	accepted := make(map[string]int, len(counts))
	for _, item := range counts {
		accepted[item.VacancyID] = item.Total
	}
	list, err := i.vacancyStore.List(dbmodels.VacancyFilter{})
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load vacancies")
	}
	result := []Drift{}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if rec.FilledCount == accepted[rec.ID] {
			continue
		}
		drift := Drift{
			VacancyID:   rec.ID,
			JobTitle:    rec.JobTitle,
			WorkerCount: rec.WorkerCount,
			FilledCount: rec.FilledCount,
			Accepted:    accepted[rec.ID],
		}
		logger := log.
			WithField("vacancy_id", rec.ID).
			WithField("filled_count", rec.FilledCount).
			WithField("accepted", drift.Accepted)
		logger.Warn("vacancy counters drifted from accepted applications")
		if fix {
			workerCount := rec.TotalCount() - drift.Accepted
			if workerCount < 0 {
				workerCount = 0
			}
			target := dbmodels.VacancyCounts{WorkerCount: workerCount, FilledCount: drift.Accepted}
			updated, err := i.vacancyStore.SetCounts(rec.ID, rec.Counts(), target)
			switch {
			case err != nil:
				logger.WithError(err).Error("failed to fix vacancy counters")
			case !updated:
				logger.Warn("vacancy counters changed since the check, fix skipped")
			default:
				drift.Fixed = true
				logger.WithField("worker_count", workerCount).Info("vacancy counters fixed")
			}
		}
		result = append(result, drift)
	}
	return result, nil
}
