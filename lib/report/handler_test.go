package reporthandler

import (
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/lib/utils/storetest"
	"labourlink-backend/models"
	reportapimodels "labourlink-backend/models/api/report"
	dbmodels "labourlink-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	t.Run(`catalogue depends on the reported role`, func(t *testing.T) {
		h := NewInstance(storetest.New(nil).Reports(), nil, "")
		ownerReasons, err := h.Reasons(models.UserRoleOwner)
		require.NoError(t, err)
		workerReasons, err := h.Reasons(models.UserRoleWorker)
		require.NoError(t, err)
		require.NotEqual(t, ownerReasons, workerReasons)
		require.True(t, models.IsKnownReportReason(models.UserRoleOwner, "Asked for advance money / fees"))
		require.False(t, models.IsKnownReportReason(models.UserRoleWorker, "Asked for advance money / fees"))

		_, err = h.Reasons("admin")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`known reason is stored as open report`, func(t *testing.T) {
		mem := storetest.New(nil)
		h := NewInstance(mem.Reports(), nil, "")
		_, err := h.Submit("owner-1", reportapimodels.ReportData{
			ToID:       "worker-1",
			TargetRole: models.UserRoleWorker,
			Reason:     "Repeated no-shows",
		})
		require.NoError(t, err)
		list := mem.ReportList()
		require.Len(t, list, 1)
		require.Equal(t, "Repeated no-shows", list[0].Reason)
		require.Equal(t, dbmodels.ReportStatusOpen, list[0].Status)
	})

	t.Run(`other needs custom text`, func(t *testing.T) {
		mem := storetest.New(nil)
		h := NewInstance(mem.Reports(), nil, "")
		data := reportapimodels.ReportData{
			ToID:       "owner-1",
			TargetRole: models.UserRoleOwner,
			Reason:     models.ReportReasonOther,
		}
		_, err := h.Submit("worker-1", data)
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		data.CustomReason = " Kept our ID cards "
		_, err = h.Submit("worker-1", data)
		require.NoError(t, err)
		require.Equal(t, "Other: Kept our ID cards", mem.ReportList()[0].Reason)
	})

	t.Run(`unknown reason and self report`, func(t *testing.T) {
		h := NewInstance(storetest.New(nil).Reports(), nil, "")
		_, err := h.Submit("worker-1", reportapimodels.ReportData{
			ToID:       "owner-1",
			TargetRole: models.UserRoleOwner,
			Reason:     "Repeated no-shows",
		})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		_, err = h.Submit("worker-1", reportapimodels.ReportData{
			ToID:       "worker-1",
			TargetRole: models.UserRoleWorker,
			Reason:     "Repeated no-shows",
		})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})
}
