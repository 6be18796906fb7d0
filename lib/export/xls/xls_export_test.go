package xlsexport

import (
	"labourlink-backend/models"
	applicationapimodels "labourlink-backend/models/api/application"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportApplicantList(t *testing.T) {
	t.Run(`phone column is filled only for accepted applicants`, func(t *testing.T) {
		phone := "+919800000002"
		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		list := []applicationapimodels.ApplicationView{
			{
				WorkerName:  "Ravi Kumar",
				Status:      models.ApplicationStatusAccepted,
				StatusName:  models.ApplicationStatusAccepted.ToHuman(),
				WorkerPhone: &phone,
				Worker: &applicationapimodels.WorkerSummary{
					Age:      27,
					State:    "Gujarat",
					District: "Surat",
					Skills:   []string{"Tailoring", "Packaging"},
				},
				CreatedAt: created,
			},
			{
				WorkerName: "Anil",
				Status:     models.ApplicationStatusPending,
				StatusName: models.ApplicationStatusPending.ToHuman(),
				CreatedAt:  created,
			},
		}
		buf, err := impl{}.ExportApplicantList("Machine operator", list)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Applicants")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		require.Equal(t, "Machine operator", rows[0][0])
		require.Equal(t, applicantHeaders, rows[1])
		require.Equal(t, []string{"Ravi Kumar", "27", "Surat, Gujarat", "Tailoring, Packaging", "Accepted", phone, "01.03.2024"}, rows[2])
		require.Equal(t, "Anil", rows[3][0])
		require.Equal(t, "", rows[3][5])
	})
}
