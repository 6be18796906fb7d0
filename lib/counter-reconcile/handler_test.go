package counterreconcile

import (
	"context"
	"labourlink-backend/lib/utils/storetest"
	vacancystore "labourlink-backend/lib/vacancy/store"
	"labourlink-backend/models"
	dbmodels "labourlink-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

// acceptDuringList applies one accept after the vacancy list has been read.
type acceptDuringList struct {
	vacancystore.Provider
}

func (a acceptDuringList) List(filter dbmodels.VacancyFilter) ([]dbmodels.Vacancy, error) {
	list, err := a.Provider.List(filter)
	if err != nil {
		return nil, err
	}
	for _, rec := range list {
		if _, err := a.Provider.AdjustCounts(rec.ID, -1); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func TestCheck(t *testing.T) {
	setup := func(t *testing.T) (*storetest.Memory, string) {
		mem := storetest.New(nil)
		vacancyID, err := mem.Vacancies().Create(dbmodels.Vacancy{
			OwnerID:     "owner-1",
			JobTitle:    "Packer",
			WorkerCount: 3,
			FilledCount: 2,
			Status:      models.VacancyStatusActive,
		})
		require.NoError(t, err)
		_, err = mem.Applications().Create(dbmodels.Application{
			WorkerID:  "worker-1",
			VacancyID: vacancyID,
			OwnerID:   "owner-1",
			Status:    models.ApplicationStatusAccepted,
		})
		require.NoError(t, err)
		return mem, vacancyID
	}

	t.Run(`drift is reported without touching counters`, func(t *testing.T) {
		mem, vacancyID := setup(t)
		h := NewInstance(mem.Vacancies(), mem.Applications())
		list, err := h.Check(context.TODO(), false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, vacancyID, list[0].VacancyID)
		require.Equal(t, 1, list[0].Accepted)
		require.False(t, list[0].Fixed)

		rec, err := mem.Vacancies().GetByID(vacancyID)
		require.NoError(t, err)
		require.Equal(t, 2, rec.FilledCount)
	})

	t.Run(`fix keeps the total headcount`, func(t *testing.T) {
		mem, vacancyID := setup(t)
		h := NewInstance(mem.Vacancies(), mem.Applications())
		list, err := h.Check(context.TODO(), true)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.True(t, list[0].Fixed)

		rec, err := mem.Vacancies().GetByID(vacancyID)
		require.NoError(t, err)
		require.Equal(t, 1, rec.FilledCount)
		require.Equal(t, 4, rec.WorkerCount)

		list, err = h.Check(context.TODO(), true)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run(`fix skips counters moved by a concurrent decision`, func(t *testing.T) {
		mem, vacancyID := setup(t)
		h := NewInstance(acceptDuringList{mem.Vacancies()}, mem.Applications())
		list, err := h.Check(context.TODO(), true)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.False(t, list[0].Fixed)

		rec, err := mem.Vacancies().GetByID(vacancyID)
		require.NoError(t, err)
		require.Equal(t, 2, rec.WorkerCount)
		require.Equal(t, 3, rec.FilledCount)
	})
}
