// Package storetest keeps every collection in process memory and implements
// the store providers for handler tests. Only _test.go files import it.
package storetest

import (
	"fmt"
	applicationstore "labourlink-backend/lib/application/store"
	notificationstore "labourlink-backend/lib/notification/store"
	profilestore "labourlink-backend/lib/profile/store"
	reportstore "labourlink-backend/lib/report/store"
	reviewstore "labourlink-backend/lib/review/store"
	savedjobstore "labourlink-backend/lib/saved-job/store"
	vacancystore "labourlink-backend/lib/vacancy/store"
	"labourlink-backend/models"
	dbmodels "labourlink-backend/models/db"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
)

type Memory struct {
	mu            sync.Mutex
	seq           int
	now           func() time.Time
	vacancies     map[string]dbmodels.Vacancy
	applications  map[string]dbmodels.Application
	users         map[string]dbmodels.User
	workers       map[string]dbmodels.WorkerProfile
	owners        map[string]dbmodels.OwnerProfile
	notifications []dbmodels.Notification
	reviews       []dbmodels.Review
	reports       []dbmodels.Report
	savedJobs     []dbmodels.SavedJob
}

func New(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		now:          now,
		vacancies:    map[string]dbmodels.Vacancy{},
		applications: map[string]dbmodels.Application{},
		users:        map[string]dbmodels.User{},
		workers:      map[string]dbmodels.WorkerProfile{},
		owners:       map[string]dbmodels.OwnerProfile{},
	}
}

func (m *Memory) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *Memory) Vacancies() vacancystore.Provider { return vacancies{m} }

func (m *Memory) Applications() applicationstore.Provider { return applications{m} }

func (m *Memory) Profiles() profilestore.Provider { return profiles{m} }

func (m *Memory) Notifications() notificationstore.Provider { return notifications{m} }

func (m *Memory) Reviews() reviewstore.Provider { return reviews{m} }

func (m *Memory) Reports() reportstore.Provider { return reports{m} }

func (m *Memory) SavedJobs() savedjobstore.Provider { return savedJobs{m} }

// ReportList returns stored reports in insertion order.
func (m *Memory) ReportList() []dbmodels.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]dbmodels.Report{}, m.reports...)
}

func (m *Memory) ownerRef(id string) *dbmodels.OwnerProfile {
	rec, ok := m.owners[id]
	if !ok {
		return nil
	}
	return &rec
}

func (m *Memory) workerRef(id string) *dbmodels.WorkerProfile {
	rec, ok := m.workers[id]
	if !ok {
		return nil
	}
	return &rec
}

func (m *Memory) vacancyRef(id string) *dbmodels.Vacancy {
	rec, ok := m.vacancies[id]
	if !ok {
		return nil
	}
	rec.Owner = m.ownerRef(rec.OwnerID)
	return &rec
}

type vacancies struct{ m *Memory }

func (s vacancies) Create(rec dbmodels.Vacancy) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec.ID = s.m.nextID("vacancy")
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.m.now()
	}
	rec.UpdatedAt = rec.CreatedAt
	rec.Owner = nil
	s.m.vacancies[rec.ID] = rec
	return rec.ID, nil
}

func (s vacancies) GetByID(id string) (*dbmodels.Vacancy, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.vacancyRef(id), nil
}

func (s vacancies) Update(id string, updMap map[string]interface{}) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec, ok := s.m.vacancies[id]
	if !ok {
		return fmt.Errorf("record not found")
	}
	for key, value := range updMap {
		switch key {
		case "job_title":
			rec.JobTitle = value.(string)
		case "description":
			rec.Description = value.(string)
		case "location":
			rec.Location = value.(string)
		case "salary":
			rec.Salary = value.(int)
		case "required_count":
			rec.RequiredCount = value.(int)
		case "accommodation":
			rec.Accommodation = value.(models.Facility)
		case "water":
			rec.Water = value.(models.Facility)
		case "required_skills":
			rec.RequiredSkills = toStrings(value)
		case "status":
			rec.Status = value.(models.VacancyStatus)
		case "created_at":
			rec.CreatedAt = value.(time.Time)
		case "worker_count":
			rec.WorkerCount = value.(int)
		case "filled_count":
			rec.FilledCount = value.(int)
		default:
			return fmt.Errorf("unsupported vacancy column: %v", key)
		}
	}
	rec.UpdatedAt = s.m.now()
	s.m.vacancies[id] = rec
	return nil
}

func (s vacancies) AdjustCounts(id string, delta int) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec, ok := s.m.vacancies[id]
	if !ok {
		return false, nil
	}
	if delta == 0 {
		return true, nil
	}
	if rec.WorkerCount+delta < 0 || rec.FilledCount-delta < 0 {
		return true, vacancystore.ErrCounterOutOfRange
	}
	rec.WorkerCount += delta
	rec.FilledCount -= delta
	s.m.vacancies[id] = rec
	return true, nil
}

func (s vacancies) SetCounts(id string, from, to dbmodels.VacancyCounts) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec, ok := s.m.vacancies[id]
	if !ok || rec.WorkerCount != from.WorkerCount || rec.FilledCount != from.FilledCount {
		return false, nil
	}
	rec.WorkerCount = to.WorkerCount
	rec.FilledCount = to.FilledCount
	rec.UpdatedAt = s.m.now()
	s.m.vacancies[id] = rec
	return true, nil
}

func (s vacancies) List(filter dbmodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	result := []dbmodels.Vacancy{}
	for id := range s.m.vacancies {
		rec := *s.m.vacancyRef(id)
		if filter.OwnerID != "" && rec.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if !filter.CreatedSince.IsZero() && rec.CreatedAt.Before(filter.CreatedSince) {
			continue
		}
		if filter.Search != "" {
			search := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(rec.JobTitle), search) &&
				!strings.Contains(strings.ToLower(rec.Location), search) {
				continue
			}
		}
		if filter.Skill != "" && !contains(rec.RequiredSkills, filter.Skill) {
			continue
		}
		result = append(result, rec)
	}
	sort.Slice(result, func(a, b int) bool {
		if filter.CreatedAtDesc {
			return result[a].CreatedAt.After(result[b].CreatedAt)
		}
		return result[a].CreatedAt.Before(result[b].CreatedAt)
	})
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		from := (page - 1) * filter.Limit
		if from >= len(result) {
			return []dbmodels.Vacancy{}, nil
		}
		to := from + filter.Limit
		if to > len(result) {
			to = len(result)
		}
		result = result[from:to]
	}
	return result, nil
}

type applications struct{ m *Memory }

func (s applications) fill(rec dbmodels.Application) dbmodels.Application {
	rec.Worker = s.m.workerRef(rec.WorkerID)
	rec.Vacancy = s.m.vacancyRef(rec.VacancyID)
	rec.Owner = s.m.ownerRef(rec.OwnerID)
	return rec
}

func (s applications) Create(rec dbmodels.Application) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, item := range s.m.applications {
		if item.WorkerID == rec.WorkerID && item.VacancyID == rec.VacancyID {
			return "", applicationstore.ErrDuplicate
		}
	}
	rec.ID = s.m.nextID("application")
	rec.CreatedAt = s.m.now()
	rec.UpdatedAt = rec.CreatedAt
	rec.Worker, rec.Vacancy, rec.Owner = nil, nil, nil
	s.m.applications[rec.ID] = rec
	return rec.ID, nil
}

func (s applications) GetByID(id string) (*dbmodels.Application, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec, ok := s.m.applications[id]
	if !ok {
		return nil, nil
	}
	rec = s.fill(rec)
	return &rec, nil
}

func (s applications) FindByWorkerAndVacancy(workerID, vacancyID string) (*dbmodels.Application, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, rec := range s.m.applications {
		if rec.WorkerID == workerID && rec.VacancyID == vacancyID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s applications) UpdateStatus(id string, from, to models.ApplicationStatus) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec, ok := s.m.applications[id]
	if !ok || rec.Status != from {
		return false, nil
	}
	rec.Status = to
	rec.UpdatedAt = s.m.now()
	s.m.applications[id] = rec
	return true, nil
}

func (s applications) DeleteByWorkerAndVacancy(workerID, vacancyID string) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var deleted int64
	for id, rec := range s.m.applications {
		if rec.WorkerID == workerID && rec.VacancyID == vacancyID {
			delete(s.m.applications, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s applications) list(match func(rec dbmodels.Application) bool) []dbmodels.Application {
	result := []dbmodels.Application{}
	for _, rec := range s.m.applications {
		if match(rec) {
			result = append(result, s.fill(rec))
		}
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].CreatedAt.Equal(result[b].CreatedAt) {
			return result[a].ID > result[b].ID
		}
		return result[a].CreatedAt.After(result[b].CreatedAt)
	})
	return result
}

func (s applications) ListByVacancy(vacancyID string) ([]dbmodels.Application, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.list(func(rec dbmodels.Application) bool { return rec.VacancyID == vacancyID }), nil
}

func (s applications) ListByWorker(workerID string) ([]dbmodels.Application, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.list(func(rec dbmodels.Application) bool { return rec.WorkerID == workerID }), nil
}

func (s applications) AcceptedCounts() ([]dbmodels.AcceptedCount, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	counts := map[string]int{}
	for _, rec := range s.m.applications {
		if rec.Status == models.ApplicationStatusAccepted {
			counts[rec.VacancyID]++
		}
	}
	result := []dbmodels.AcceptedCount{}
	for vacancyID, total := range counts {
		result = append(result, dbmodels.AcceptedCount{VacancyID: vacancyID, Total: total})
	}
	return result, nil
}

type profiles struct{ m *Memory }

func (s profiles) GetUser(id string) (*dbmodels.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec, ok := s.m.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s profiles) SaveUser(rec dbmodels.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.m.now()
	}
	s.m.users[rec.ID] = rec
	return nil
}

func (s profiles) UpdateUser(id string, updMap map[string]interface{}) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec, ok := s.m.users[id]
	if !ok {
		return fmt.Errorf("record not found")
	}
	for key, value := range updMap {
		switch key {
		case "photo_url":
			rec.PhotoURL = value.(string)
		case "name":
			rec.Name = value.(string)
		case "phone":
			rec.Phone = value.(string)
		case "status":
			rec.Status = value.(models.UserStatus)
		default:
			return fmt.Errorf("unsupported user column: %v", key)
		}
	}
	s.m.users[id] = rec
	return nil
}

func (s profiles) GetWorker(id string) (*dbmodels.WorkerProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.workerRef(id), nil
}

func (s profiles) SaveWorker(rec dbmodels.WorkerProfile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.workers[rec.ID] = rec
	return nil
}

func (s profiles) GetOwner(id string) (*dbmodels.OwnerProfile, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.m.ownerRef(id), nil
}

func (s profiles) SaveOwner(rec dbmodels.OwnerProfile) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.owners[rec.ID] = rec
	return nil
}

type notifications struct{ m *Memory }

func (s notifications) Create(rec dbmodels.Notification) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec.ID = s.m.nextID("notification")
	rec.CreatedAt = s.m.now()
	s.m.notifications = append(s.m.notifications, rec)
	return rec.ID, nil
}

func (s notifications) List(userID string) ([]dbmodels.Notification, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	result := []dbmodels.Notification{}
	for k := len(s.m.notifications) - 1; k >= 0; k-- {
		if s.m.notifications[k].ToUserID == userID {
			result = append(result, s.m.notifications[k])
		}
	}
	return result, nil
}

func (s notifications) MarkRead(userID, id string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for k := range s.m.notifications {
		if s.m.notifications[k].ID == id && s.m.notifications[k].ToUserID == userID {
			s.m.notifications[k].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (s notifications) UnreadCount(userID string) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var count int64
	for _, rec := range s.m.notifications {
		if rec.ToUserID == userID && !rec.IsRead {
			count++
		}
	}
	return count, nil
}

type reviews struct{ m *Memory }

func (s reviews) Create(rec dbmodels.Review) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, item := range s.m.reviews {
		if item.FromID == rec.FromID && item.ToID == rec.ToID {
			return "", reviewstore.ErrDuplicate
		}
	}
	rec.ID = s.m.nextID("review")
	rec.CreatedAt = s.m.now()
	s.m.reviews = append(s.m.reviews, rec)
	return rec.ID, nil
}

func (s reviews) Exists(fromID, toID string) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, item := range s.m.reviews {
		if item.FromID == fromID && item.ToID == toID {
			return true, nil
		}
	}
	return false, nil
}

func (s reviews) ListFor(toID string) ([]dbmodels.Review, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	result := []dbmodels.Review{}
	for k := len(s.m.reviews) - 1; k >= 0; k-- {
		if s.m.reviews[k].ToID == toID {
			result = append(result, s.m.reviews[k])
		}
	}
	return result, nil
}

func (s reviews) AverageFor(toID string) (float64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	sum, count := 0, 0
	for _, item := range s.m.reviews {
		if item.ToID == toID {
			sum += item.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

type reports struct{ m *Memory }

func (s reports) Create(rec dbmodels.Report) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	rec.ID = s.m.nextID("report")
	rec.CreatedAt = s.m.now()
	s.m.reports = append(s.m.reports, rec)
	return rec.ID, nil
}

type savedJobs struct{ m *Memory }

func (s savedJobs) Save(workerID, vacancyID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, item := range s.m.savedJobs {
		if item.WorkerID == workerID && item.VacancyID == vacancyID {
			return nil
		}
	}
	s.m.savedJobs = append(s.m.savedJobs, dbmodels.SavedJob{
		WorkerID:  workerID,
		VacancyID: vacancyID,
		CreatedAt: s.m.now(),
	})
	return nil
}

func (s savedJobs) Remove(workerID, vacancyID string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	result := s.m.savedJobs[:0]
	for _, item := range s.m.savedJobs {
		if item.WorkerID == workerID && item.VacancyID == vacancyID {
			continue
		}
		result = append(result, item)
	}
	s.m.savedJobs = result
	return nil
}

func (s savedJobs) List(workerID string) ([]dbmodels.SavedJob, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	result := []dbmodels.SavedJob{}
	for k := len(s.m.savedJobs) - 1; k >= 0; k-- {
		item := s.m.savedJobs[k]
		if item.WorkerID != workerID {
			continue
		}
		item.Vacancy = s.m.vacancyRef(item.VacancyID)
		result = append(result, item)
	}
	return result, nil
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func toStrings(value interface{}) pq.StringArray {
	switch v := value.(type) {
	case pq.StringArray:
		return append(pq.StringArray{}, v...)
	case []string:
		return append(pq.StringArray{}, v...)
	}
	return nil
}
