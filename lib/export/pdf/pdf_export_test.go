package pdfexport

import (
	"bytes"
	"labourlink-backend/models"
	vacancyapimodels "labourlink-backend/models/api/vacancy"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateVacancyPoster(t *testing.T) {
	t.Run(`poster without logo`, func(t *testing.T) {
		view := vacancyapimodels.VacancyView{
			VacancyData: vacancyapimodels.VacancyData{
				JobTitle:       "Machine operator",
				Description:    "Two shifts, food provided.",
				Location:       "Surat",
				Salary:         15000,
				RequiredCount:  5,
				Accommodation:  models.FacilityFree,
				Water:          models.FacilityPaid,
				RequiredSkills: []string{"Stitching"},
			},
			CompanyName: "Shree Textiles",
			WorkerCount: 3,
			CreatedAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}
		data, err := GenerateVacancyPoster(view, nil)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	})
	t.Run(`logo without extension is rejected`, func(t *testing.T) {
		_, err := GenerateVacancyPoster(vacancyapimodels.VacancyView{}, &Image{FileName: "logo", Body: []byte{1}})
		require.Error(t, err)
	})
}

func TestGetImgType(t *testing.T) {
	ext, err := GetImgType("photo.JPG")
	require.NoError(t, err)
	require.Equal(t, "jpg", ext)

	_, err = GetImgType("photo.")
	require.Error(t, err)
}
