package reviewhandler

import (
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/lib/utils/storetest"
	"labourlink-backend/models"
	reviewapimodels "labourlink-backend/models/api/review"
	dbmodels "labourlink-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) Provider {
	mem := storetest.New(nil)
	profiles := mem.Profiles()
	require.NoError(t, profiles.SaveUser(dbmodels.User{
		BaseUserModel: dbmodels.BaseUserModel{ID: "owner-1"},
		Role:          models.UserRoleOwner,
	}))
	require.NoError(t, profiles.SaveUser(dbmodels.User{
		BaseUserModel: dbmodels.BaseUserModel{ID: "worker-1"},
		Role:          models.UserRoleWorker,
	}))
	return NewInstance(mem.Reviews(), profiles)
}

func review(toID string, rating int, role models.UserRole) reviewapimodels.ReviewData {
	return reviewapimodels.ReviewData{
		ToID:       toID,
		Rating:     rating,
		Comment:    "paid on time",
		TargetRole: role,
	}
}

func TestReview(t *testing.T) {
	t.Run(`second rating for the same pair is pre-empted`, func(t *testing.T) {
		h := newTestHandler(t)
		eligibility, err := h.CheckEligibility("worker-1", "owner-1")
		require.NoError(t, err)
		require.True(t, eligibility.CanRate)

		_, err = h.Submit("worker-1", review("owner-1", 4, models.UserRoleOwner))
		require.NoError(t, err)

		eligibility, err = h.CheckEligibility("worker-1", "owner-1")
		require.NoError(t, err)
		require.False(t, eligibility.CanRate)
		require.True(t, eligibility.AlreadyRated)

		_, err = h.Submit("worker-1", review("owner-1", 1, models.UserRoleOwner))
		require.True(t, apperrors.Is(err, apperrors.KindConflict))

		summary, err := h.Summary("owner-1")
		require.NoError(t, err)
		require.Equal(t, 1, summary.Count)
		require.Equal(t, 4.0, summary.Average)
	})

	t.Run(`the reverse direction is a different pair`, func(t *testing.T) {
		h := newTestHandler(t)
		_, err := h.Submit("worker-1", review("owner-1", 5, models.UserRoleOwner))
		require.NoError(t, err)
		_, err = h.Submit("owner-1", review("worker-1", 3, models.UserRoleWorker))
		require.NoError(t, err)
	})

	t.Run(`invalid reviews`, func(t *testing.T) {
		h := newTestHandler(t)
		_, err := h.Submit("worker-1", review("owner-1", 6, models.UserRoleOwner))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		_, err = h.Submit("worker-1", review("worker-1", 5, models.UserRoleWorker))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		_, err = h.Submit("worker-1", review("owner-1", 5, models.UserRoleWorker))
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		_, err = h.Submit("worker-1", review("ghost", 5, models.UserRoleOwner))
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run(`summary of unrated user`, func(t *testing.T) {
		h := newTestHandler(t)
		summary, err := h.Summary("owner-1")
		require.NoError(t, err)
		require.Equal(t, 0, summary.Count)
		require.Equal(t, 0.0, summary.Average)
		require.Empty(t, summary.Reviews)
	})
}
