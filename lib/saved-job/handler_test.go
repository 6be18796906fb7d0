package savedjobhandler

import (
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/lib/utils/storetest"
	"labourlink-backend/models"
	dbmodels "labourlink-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSavedJob(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run(`save is idempotent and list is annotated with expiry`, func(t *testing.T) {
		mem := storetest.New(clock)
		h := NewInstance(mem.SavedJobs(), mem.Vacancies(), clock)
		rec := dbmodels.Vacancy{OwnerID: "owner-1", JobTitle: "Packer", Status: models.VacancyStatusActive}
		rec.CreatedAt = now.Add(-31 * 24 * time.Hour)
		vacancyID, err := mem.Vacancies().Create(rec)
		require.NoError(t, err)

		require.NoError(t, h.Save("worker-1", vacancyID))
		require.NoError(t, h.Save("worker-1", vacancyID))
		list, err := h.List("worker-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.True(t, list[0].IsExpired)

		require.NoError(t, h.Remove("worker-1", vacancyID))
		require.NoError(t, h.Remove("worker-1", vacancyID))
		list, err = h.List("worker-1")
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run(`save of missing vacancy`, func(t *testing.T) {
		mem := storetest.New(clock)
		h := NewInstance(mem.SavedJobs(), mem.Vacancies(), clock)
		err := h.Save("worker-1", "missing")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})
}
