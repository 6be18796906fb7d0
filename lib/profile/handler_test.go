package profilehandler

import (
	"context"
	reviewhandler "labourlink-backend/lib/review"
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/lib/utils/storetest"
	"labourlink-backend/models"
	profileapimodels "labourlink-backend/models/api/profile"
	reviewapimodels "labourlink-backend/models/api/review"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploaded []string
}

func (f *fakeStorage) UploadPhoto(_ context.Context, userID string, _ []byte, fileName, _ string) (string, error) {
	f.uploaded = append(f.uploaded, fileName)
	return "https://media.example.com/photos/" + userID + "/" + fileName, nil
}

func (f *fakeStorage) GetFile(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

func workerData() profileapimodels.WorkerData {
	return profileapimodels.WorkerData{
		Name:     "Ravi Kumar",
		Age:      27,
		State:    "Gujarat",
		District: "Surat",
		Skills:   []string{"Tailoring", " Tailoring", "Packaging"},
	}
}

func ownerData() profileapimodels.OwnerData {
	return profileapimodels.OwnerData{
		CompanyName: "Sunrise Textiles",
		OwnerName:   "Meera Shah",
		FactoryCity: "Surat",
		Latitude:    21.17,
		Longitude:   72.83,
	}
}

func TestProfile(t *testing.T) {
	newHandler := func() (Provider, reviewhandler.Provider, *fakeStorage) {
		mem := storetest.New(nil)
		review := reviewhandler.NewInstance(mem.Reviews(), mem.Profiles())
		storage := &fakeStorage{}
		return NewInstance(mem.Profiles(), review, storage), review, storage
	}

	t.Run(`worker setup creates account and profile`, func(t *testing.T) {
		h, _, _ := newHandler()
		require.NoError(t, h.SetupWorker("worker-1", "+919800000002", workerData()))

		me, err := h.GetMe("worker-1")
		require.NoError(t, err)
		require.Equal(t, models.UserRoleWorker, me.Role)
		require.Equal(t, "+919800000002", me.Phone)
		require.Equal(t, models.UserStatusPending, me.Status)
		require.NotNil(t, me.Worker)
		require.Nil(t, me.Owner)
		require.Equal(t, []string{"Tailoring", "Packaging"}, me.Worker.Skills)

		role, err := h.GetRole("worker-1")
		require.NoError(t, err)
		require.Equal(t, models.UserRoleWorker, role)
		phone, err := h.GetPhone("worker-1")
		require.NoError(t, err)
		require.Equal(t, "+919800000002", phone)
	})

	t.Run(`unknown user has no role`, func(t *testing.T) {
		h, _, _ := newHandler()
		role, err := h.GetRole("nobody")
		require.NoError(t, err)
		require.Empty(t, role)
		_, err = h.GetPhone("nobody")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`repeated setup keeps phone and rejects role switch`, func(t *testing.T) {
		h, _, _ := newHandler()
		require.NoError(t, h.SetupOwner("owner-1", "+919800000001", ownerData()))
		data := ownerData()
		data.CompanyName = "Sunrise Mills"
		require.NoError(t, h.SetupOwner("owner-1", "", data))

		me, err := h.GetMe("owner-1")
		require.NoError(t, err)
		require.Equal(t, "+919800000001", me.Phone)
		require.Equal(t, "Sunrise Mills", me.Owner.CompanyName)
		require.True(t, me.Owner.ProfileCompleted)

		err = h.SetupWorker("owner-1", "", workerData())
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
	})

	t.Run(`invalid setup data`, func(t *testing.T) {
		h, _, _ := newHandler()
		data := workerData()
		data.Age = 12
		require.True(t, apperrors.Is(h.SetupWorker("worker-1", "", data), apperrors.KindValidation))
		owner := ownerData()
		owner.CompanyName = ""
		require.True(t, apperrors.Is(h.SetupOwner("owner-1", "", owner), apperrors.KindValidation))

		_, err := h.GetMe("worker-1")
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`public profile carries rating and no phone`, func(t *testing.T) {
		h, review, _ := newHandler()
		require.NoError(t, h.SetupOwner("owner-1", "+919800000001", ownerData()))
		require.NoError(t, h.SetupWorker("worker-1", "+919800000002", workerData()))
		_, err := review.Submit("worker-1", reviewapimodels.ReviewData{
			ToID:       "owner-1",
			Rating:     5,
			TargetRole: models.UserRoleOwner,
		})
		require.NoError(t, err)

		public, err := h.GetPublicProfile("owner-1")
		require.NoError(t, err)
		require.Equal(t, "Sunrise Textiles", public.Owner.CompanyName)
		require.Equal(t, 1, public.Rating.Count)
		require.Equal(t, 5.0, public.Rating.Average)
	})

	t.Run(`photo upload stores url on the account`, func(t *testing.T) {
		h, _, storage := newHandler()
		require.NoError(t, h.SetupWorker("worker-1", "", workerData()))

		_, err := h.UploadPhoto(context.TODO(), "worker-1", []byte("%PDF"), "cv.pdf", "application/pdf")
		require.True(t, apperrors.Is(err, apperrors.KindValidation))

		url, err := h.UploadPhoto(context.TODO(), "worker-1", []byte{0xff, 0xd8}, "me.jpg", "image/jpeg")
		require.NoError(t, err)
		require.Equal(t, []string{"me.jpg"}, storage.uploaded)
		me, err := h.GetMe("worker-1")
		require.NoError(t, err)
		require.Equal(t, url, me.PhotoURL)
	})
}
