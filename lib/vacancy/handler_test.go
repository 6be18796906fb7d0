package vacancyhandler

import (
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/lib/utils/storetest"
	"labourlink-backend/models"
	vacancyapimodels "labourlink-backend/models/api/vacancy"
	dbmodels "labourlink-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ownerID = "owner-1"

type clock struct {
	current time.Time
}

func (c *clock) now() time.Time { return c.current }

func (c *clock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestHandler(t *testing.T) (Provider, *storetest.Memory, *clock) {
	c := &clock{current: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	mem := storetest.New(c.now)
	err := mem.Profiles().SaveOwner(dbmodels.OwnerProfile{
		BaseUserModel: dbmodels.BaseUserModel{ID: ownerID},
		CompanyName:   "Sunrise Textiles",
	})
	require.NoError(t, err)
	return NewInstance(mem.Vacancies(), mem.Profiles(), c.now), mem, c
}

func vacancyData(count int) vacancyapimodels.VacancyData {
	return vacancyapimodels.VacancyData{
		JobTitle:       "Machine operator",
		Description:    "Night shift on weaving line",
		Location:       "Surat",
		Salary:         15000,
		RequiredCount:  count,
		Accommodation:  models.FacilityFree,
		Water:          models.FacilityNone,
		RequiredSkills: []string{" Weaving ", "Weaving", "Packing"},
	}
}

func TestPost(t *testing.T) {
	t.Run(`post creates active vacancy with full remaining headcount`, func(t *testing.T) {
		h, mem, c := newTestHandler(t)
		id, err := h.Post(ownerID, vacancyData(5))
		require.NoError(t, err)

		rec, err := mem.Vacancies().GetByID(id)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, models.VacancyStatusActive, rec.Status)
		require.Equal(t, 5, rec.WorkerCount)
		require.Equal(t, 0, rec.FilledCount)
		require.Equal(t, c.now(), rec.CreatedAt)
		require.Equal(t, []string{"Weaving", "Packing"}, []string(rec.RequiredSkills))
	})

	t.Run(`post rejects malformed input`, func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		_, err := h.Post(ownerID, vacancyData(0))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		data := vacancyData(2)
		data.JobTitle = "  "
		_, err = h.Post(ownerID, data)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		data = vacancyData(2)
		data.Water = "Bottled"
		_, err = h.Post(ownerID, data)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`post requires owner profile`, func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		_, err := h.Post("stranger", vacancyData(2))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})
}

func TestEdit(t *testing.T) {
	t.Run(`edit overwrites descriptive fields and keeps counters`, func(t *testing.T) {
		h, mem, c := newTestHandler(t)
		id, err := h.Post(ownerID, vacancyData(5))
		require.NoError(t, err)
		_, err = mem.Vacancies().AdjustCounts(id, -2)
		require.NoError(t, err)
		created := c.now()
		c.advance(time.Hour)

		data := vacancyData(9)
		data.JobTitle = "Senior machine operator"
		data.Salary = 18000
		require.NoError(t, h.Edit(ownerID, id, data))

		rec, err := mem.Vacancies().GetByID(id)
		require.NoError(t, err)
		require.Equal(t, "Senior machine operator", rec.JobTitle)
		require.Equal(t, 18000, rec.Salary)
		require.Equal(t, 9, rec.RequiredCount)
		require.Equal(t, 3, rec.WorkerCount)
		require.Equal(t, 2, rec.FilledCount)
		require.Equal(t, models.VacancyStatusActive, rec.Status)
		require.Equal(t, created, rec.CreatedAt)
	})

	t.Run(`edit by another owner is rejected before any write`, func(t *testing.T) {
		h, mem, _ := newTestHandler(t)
		id, err := h.Post(ownerID, vacancyData(5))
		require.NoError(t, err)

		data := vacancyData(5)
		data.JobTitle = "Hijacked"
		err = h.Edit("owner-2", id, data)
		require.True(t, apperrors.Is(err, apperrors.KindAuthorization))

		rec, err := mem.Vacancies().GetByID(id)
		require.NoError(t, err)
		require.Equal(t, "Machine operator", rec.JobTitle)
	})

	t.Run(`edit of missing vacancy`, func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		err := h.Edit(ownerID, "nope", vacancyData(1))
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}

func TestSetStatus(t *testing.T) {
	t.Run(`set status twice is the same as once`, func(t *testing.T) {
		h, mem, _ := newTestHandler(t)
		id, err := h.Post(ownerID, vacancyData(3))
		require.NoError(t, err)

		require.NoError(t, h.SetStatus(ownerID, id, models.VacancyStatusInactive))
		once, err := mem.Vacancies().GetByID(id)
		require.NoError(t, err)
		require.NoError(t, h.SetStatus(ownerID, id, models.VacancyStatusInactive))
		twice, err := mem.Vacancies().GetByID(id)
		require.NoError(t, err)
		require.Equal(t, once, twice)
		require.Equal(t, models.VacancyStatusInactive, twice.Status)
		require.Equal(t, 3, twice.WorkerCount)

		require.NoError(t, h.SetStatus(ownerID, id, models.VacancyStatusActive))
		require.NoError(t, h.SetStatus(ownerID, id, models.VacancyStatusActive))
		rec, err := mem.Vacancies().GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.VacancyStatusActive, rec.Status)
	})

	t.Run(`unknown status and foreign owner`, func(t *testing.T) {
		h, _, _ := newTestHandler(t)
		id, err := h.Post(ownerID, vacancyData(3))
		require.NoError(t, err)
		err = h.SetStatus(ownerID, id, "archived")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		err = h.SetStatus("owner-2", id, models.VacancyStatusInactive)
		require.True(t, apperrors.Is(err, apperrors.KindAuthorization))
	})
}

func TestExpiry(t *testing.T) {
	t.Run(`expiry depends on age only`, func(t *testing.T) {
		now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		rec := dbmodels.Vacancy{Status: models.VacancyStatusInactive}
		rec.CreatedAt = now.Add(-29 * 24 * time.Hour)
		require.False(t, rec.IsExpired(now))
		rec.CreatedAt = now.Add(-31 * 24 * time.Hour)
		require.True(t, rec.IsExpired(now))
		require.True(t, rec.IsExpired(now))
		rec.Status = models.VacancyStatusActive
		require.True(t, rec.IsExpired(now))
	})

	t.Run(`renew clears expiry regardless of prior status`, func(t *testing.T) {
		h, mem, c := newTestHandler(t)
		id, err := h.Post(ownerID, vacancyData(2))
		require.NoError(t, err)
		require.NoError(t, h.SetStatus(ownerID, id, models.VacancyStatusInactive))
		c.advance(31 * 24 * time.Hour)

		view, err := h.GetByID(id)
		require.NoError(t, err)
		require.True(t, view.IsExpired)

		require.NoError(t, h.Renew(ownerID, id))
		view, err = h.GetByID(id)
		require.NoError(t, err)
		require.False(t, view.IsExpired)
		require.Equal(t, models.VacancyStatusActive, view.Status)
		require.Equal(t, c.now(), view.CreatedAt)

		rec, err := mem.Vacancies().GetByID(id)
		require.NoError(t, err)
		require.Equal(t, 2, rec.WorkerCount)
		require.Equal(t, 0, rec.FilledCount)
	})
}

func TestListings(t *testing.T) {
	t.Run(`worker browse hides expired vacancy until renewed`, func(t *testing.T) {
		h, _, c := newTestHandler(t)
		oldID, err := h.Post(ownerID, vacancyData(2))
		require.NoError(t, err)
		c.advance(40 * 24 * time.Hour)
		freshID, err := h.Post(ownerID, vacancyData(1))
		require.NoError(t, err)
		pausedID, err := h.Post(ownerID, vacancyData(1))
		require.NoError(t, err)
		require.NoError(t, h.SetStatus(ownerID, pausedID, models.VacancyStatusInactive))

		list, err := h.ListActiveForWorkers(vacancyapimodels.VacancyFilter{})
		require.NoError(t, err)
		require.Equal(t, []string{freshID}, viewIDs(list))

		c.advance(time.Minute)
		require.NoError(t, h.Renew(ownerID, oldID))
		list, err = h.ListActiveForWorkers(vacancyapimodels.VacancyFilter{})
		require.NoError(t, err)
		require.Equal(t, []string{oldID, freshID}, viewIDs(list))
	})

	t.Run(`worker browse filters by search and skill`, func(t *testing.T) {
		h, _, c := newTestHandler(t)
		data := vacancyData(1)
		data.Location = "Tiruppur"
		data.RequiredSkills = []string{"Stitching"}
		stitchID, err := h.Post(ownerID, data)
		require.NoError(t, err)
		c.advance(time.Minute)
		_, err = h.Post(ownerID, vacancyData(1))
		require.NoError(t, err)

		list, err := h.ListActiveForWorkers(vacancyapimodels.VacancyFilter{Search: "tirup"})
		require.NoError(t, err)
		require.Equal(t, []string{stitchID}, viewIDs(list))

		list, err = h.ListActiveForWorkers(vacancyapimodels.VacancyFilter{Skill: "Stitching"})
		require.NoError(t, err)
		require.Equal(t, []string{stitchID}, viewIDs(list))
	})

	t.Run(`owner sees everything, partitioned by expiry`, func(t *testing.T) {
		h, _, c := newTestHandler(t)
		oldID, err := h.Post(ownerID, vacancyData(2))
		require.NoError(t, err)
		c.advance(31 * 24 * time.Hour)
		pausedID, err := h.Post(ownerID, vacancyData(1))
		require.NoError(t, err)
		require.NoError(t, h.SetStatus(ownerID, pausedID, models.VacancyStatusInactive))

		list, err := h.ListForOwner(ownerID)
		require.NoError(t, err)
		require.Len(t, list, 2)

		parts := vacancyapimodels.PartitionForOwner(list)
		require.Equal(t, []string{pausedID}, viewIDs(parts.Active))
		require.Equal(t, []string{oldID}, viewIDs(parts.Expired))
		require.Equal(t, "Sunrise Textiles", parts.Active[0].CompanyName)

		other, err := h.ListForOwner("owner-2")
		require.NoError(t, err)
		require.Empty(t, other)
	})
}

func viewIDs(list []vacancyapimodels.VacancyView) []string {
	ids := []string{}
	for _, item := range list {
		ids = append(ids, item.ID)
	}
	return ids
}
