package reviewhandler

import (
	"labourlink-backend/db"
	profilestore "labourlink-backend/lib/profile/store"
	reviewstore "labourlink-backend/lib/review/store"
	apperrors "labourlink-backend/lib/utils/app-errors"
	reviewapimodels "labourlink-backend/models/api/review"
	dbmodels "labourlink-backend/models/db"
	"math"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// CheckEligibility is a read-only pre-check; Submit runs it again before writing.
	CheckEligibility(fromID, toID string) (reviewapimodels.Eligibility, error)
	Submit(fromID string, data reviewapimodels.ReviewData) (id string, err error)
	Summary(userID string) (reviewapimodels.RatingSummary, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(reviewstore.NewInstance(db.DB), profilestore.NewInstance(db.DB))
}

func NewInstance(store reviewstore.Provider, profileStore profilestore.Provider) Provider {
	return impl{
		store:        store,
		profileStore: profileStore,
	}
}

type impl struct {
	store        reviewstore.Provider
	profileStore profilestore.Provider
}

func (i impl) CheckEligibility(fromID, toID string) (reviewapimodels.Eligibility, error) {
	if fromID == "" || toID == "" || fromID == toID {
		return reviewapimodels.Eligibility{}, nil
	}
	exists, err := i.store.Exists(fromID, toID)
	if err != nil {
		return reviewapimodels.Eligibility{}, apperrors.Transient(err, "failed to check existing review")
	}
	return reviewapimodels.Eligibility{
		CanRate:      !exists,
		AlreadyRated: exists,
	}, nil
}

func (i impl) Submit(fromID string, data reviewapimodels.ReviewData) (string, error) {
	if err := data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	if fromID == data.ToID {
		return "", apperrors.NewValidation("you cannot rate yourself")
	}
	target, err := i.profileStore.GetUser(data.ToID)
	if err != nil {
		return "", apperrors.Transient(err, "failed to load rated user")
	}
	if target == nil {
		return "", apperrors.NewNotFound("rated user not found")
	}
	if target.Role != "" && target.Role != data.TargetRole {
		return "", apperrors.NewValidation("target role does not match the rated user")
	}
	eligibility, err := i.CheckEligibility(fromID, data.ToID)
	if err != nil {
		return "", err
	}
	if eligibility.AlreadyRated {
		return "", apperrors.NewConflict("already rated")
	}
	id, err := i.store.Create(dbmodels.Review{
		FromID:     fromID,
		ToID:       data.ToID,
		Rating:     data.Rating,
		Comment:    strings.TrimSpace(data.Comment),
		TargetRole: data.TargetRole,
	})
	if err != nil {
		if errors.Is(err, reviewstore.ErrDuplicate) {
			return "", apperrors.NewConflict("already rated")
		}
		return "", apperrors.Transient(err, "failed to save review")
	}
	log.
		WithField("from_id", fromID).
		WithField("to_id", data.ToID).
		WithField("rating", data.Rating).
		Info("review submitted")
	return id, nil
}

func (i impl) Summary(userID string) (reviewapimodels.RatingSummary, error) {
	list, err := i.store.ListFor(userID)
	if err != nil {
		return reviewapimodels.RatingSummary{}, apperrors.Transient(err, "failed to load reviews")
	}
	avg, err := i.store.AverageFor(userID)
	if err != nil {
		return reviewapimodels.RatingSummary{}, apperrors.Transient(err, "failed to load rating")
	}
	result := reviewapimodels.RatingSummary{
		Average: math.Round(avg*10) / 10,
		Count:   len(list),
		Reviews: make([]reviewapimodels.ReviewView, 0, len(list)),
	}
	for _, rec := range list {
		result.Reviews = append(result.Reviews, reviewapimodels.ReviewConvert(rec))
	}
	return result, nil
}
