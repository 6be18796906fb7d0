package profilehandler

import (
	"context"
	"labourlink-backend/db"
	filestorage "labourlink-backend/lib/file-storage"
	profilestore "labourlink-backend/lib/profile/store"
	reviewhandler "labourlink-backend/lib/review"
	apperrors "labourlink-backend/lib/utils/app-errors"
	initchecker "labourlink-backend/lib/utils/init-checker"
	"labourlink-backend/models"
	profileapimodels "labourlink-backend/models/api/profile"
	dbmodels "labourlink-backend/models/db"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetMe(userID string) (profileapimodels.MeView, error)
	GetRole(userID string) (models.UserRole, error)
	GetPhone(userID string) (string, error)
	SetupWorker(userID, phone string, data profileapimodels.WorkerData) error
	SetupOwner(userID, phone string, data profileapimodels.OwnerData) error
	GetPublicProfile(targetID string) (profileapimodels.PublicProfile, error)
	UploadPhoto(ctx context.Context, userID string, file []byte, fileName, contentType string) (url string, err error)
}

var Instance Provider

var errNoStorage = errors.New("file storage is not initialized")

func NewHandler() {
	initchecker.CheckInit(
		"reviewhandler", reviewhandler.Instance,
	)
	Instance = NewInstance(profilestore.NewInstance(db.DB), reviewhandler.Instance, filestorage.Instance)
}

// NewInstance accepts a nil fileStorage; photo upload then fails as transient.
func NewInstance(store profilestore.Provider, review reviewhandler.Provider, fileStorage filestorage.Provider) Provider {
	return impl{
		store:       store,
		review:      review,
		fileStorage: fileStorage,
	}
}

type impl struct {
	store       profilestore.Provider
	review      reviewhandler.Provider
	fileStorage filestorage.Provider
}

func (i impl) getLogger(userID string) *log.Entry {
	return log.WithField("user_id", userID)
}

func (i impl) GetMe(userID string) (profileapimodels.MeView, error) {
	user, err := i.store.GetUser(userID)
	if err != nil {
		return profileapimodels.MeView{}, apperrors.Transient(err, "failed to load user")
	}
	if user == nil {
		return profileapimodels.MeView{}, apperrors.NewNotFound("profile is not set up")
	}
	result := profileapimodels.MeView{
		ID:        user.ID,
		Phone:     user.Phone,
		Role:      user.Role,
		Name:      user.Name,
		PhotoURL:  user.PhotoURL,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
	result.Worker, result.Owner, err = i.roleProfile(user)
	if err != nil {
		return profileapimodels.MeView{}, err
	}
	return result, nil
}

// GetRole returns an empty role for users that have not set up a profile yet.
func (i impl) GetRole(userID string) (models.UserRole, error) {
	user, err := i.store.GetUser(userID)
	if err != nil {
		return "", apperrors.Transient(err, "failed to load user")
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

func (i impl) GetPhone(userID string) (string, error) {
	user, err := i.store.GetUser(userID)
	if err != nil {
		return "", apperrors.Transient(err, "failed to load user")
	}
	if user == nil {
		return "", apperrors.NewNotFound("user not found")
	}
	return user.Phone, nil
}

func (i impl) SetupWorker(userID, phone string, data profileapimodels.WorkerData) error {
	if err := data.Validate(); err != nil {
		return apperrors.NewValidation(err.Error())
	}
	if err := i.saveUser(userID, phone, models.UserRoleWorker, data.Name); err != nil {
		return err
	}
	rec := dbmodels.WorkerProfile{
		BaseUserModel: dbmodels.BaseUserModel{ID: userID},
		Name:          strings.TrimSpace(data.Name),
		Age:           data.Age,
		State:         strings.TrimSpace(data.State),
		District:      strings.TrimSpace(data.District),
		Skills:        pq.StringArray(models.NormalizeSkills(data.Skills)),
	}
	existing, err := i.store.GetWorker(userID)
	if err != nil {
		return apperrors.Transient(err, "failed to load worker profile")
	}
	if existing != nil {
		rec.CreatedAt = existing.CreatedAt
		rec.NoShowCount = existing.NoShowCount
		rec.Verified = existing.Verified
	}
	if err = i.store.SaveWorker(rec); err != nil {
		return apperrors.Transient(err, "failed to save worker profile")
	}
	i.getLogger(userID).Info("worker profile saved")
	return nil
}

func (i impl) SetupOwner(userID, phone string, data profileapimodels.OwnerData) error {
	if err := data.Validate(); err != nil {
		return apperrors.NewValidation(err.Error())
	}
	if err := i.saveUser(userID, phone, models.UserRoleOwner, data.OwnerName); err != nil {
		return err
	}
	rec := dbmodels.OwnerProfile{
		BaseUserModel:    dbmodels.BaseUserModel{ID: userID},
		CompanyName:      strings.TrimSpace(data.CompanyName),
		OwnerName:        strings.TrimSpace(data.OwnerName),
		FactoryAddress:   strings.TrimSpace(data.FactoryAddress),
		FactoryCity:      strings.TrimSpace(data.FactoryCity),
		FactoryState:     strings.TrimSpace(data.FactoryState),
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		ProfileCompleted: true,
	}
	existing, err := i.store.GetOwner(userID)
	if err != nil {
		return apperrors.Transient(err, "failed to load owner profile")
	}
	if existing != nil {
		rec.CreatedAt = existing.CreatedAt
		rec.Verified = existing.Verified
	}
	if err = i.store.SaveOwner(rec); err != nil {
		return apperrors.Transient(err, "failed to save owner profile")
	}
	i.getLogger(userID).Info("owner profile saved")
	return nil
}

func (i impl) GetPublicProfile(targetID string) (profileapimodels.PublicProfile, error) {
	user, err := i.store.GetUser(targetID)
	if err != nil {
		return profileapimodels.PublicProfile{}, apperrors.Transient(err, "failed to load user")
	}
	if user == nil {
		return profileapimodels.PublicProfile{}, apperrors.NewNotFound("user not found")
	}
	result := profileapimodels.PublicProfile{
		ID:       user.ID,
		Role:     user.Role,
		Name:     user.Name,
		PhotoURL: user.PhotoURL,
	}
	result.Worker, result.Owner, err = i.roleProfile(user)
	if err != nil {
		return profileapimodels.PublicProfile{}, err
	}
	result.Rating, err = i.review.Summary(targetID)
	if err != nil {
		return profileapimodels.PublicProfile{}, err
	}
	return result, nil
}

func (i impl) UploadPhoto(ctx context.Context, userID string, file []byte, fileName, contentType string) (string, error) {
	if len(file) == 0 {
		return "", apperrors.NewValidation("photo is empty")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.NewValidation("photo must be an image")
	}
	user, err := i.store.GetUser(userID)
	if err != nil {
		return "", apperrors.Transient(err, "failed to load user")
	}
	if user == nil {
		return "", apperrors.NewNotFound("profile is not set up")
	}
	if i.fileStorage == nil {
		return "", apperrors.Transient(errNoStorage, "media storage is not configured")
	}
	url, err := i.fileStorage.UploadPhoto(ctx, userID, file, fileName, contentType)
	if err != nil {
		return "", apperrors.Transient(err, "failed to upload photo")
	}
	if err = i.store.UpdateUser(userID, map[string]interface{}{"photo_url": url}); err != nil {
		return "", apperrors.Transient(err, "failed to save photo")
	}
	i.getLogger(userID).Info("profile photo updated")
	return url, nil
}

func (i impl) saveUser(userID, phone string, role models.UserRole, name string) error {
	if userID == "" {
		return apperrors.NewValidation("user id is required")
	}
	existing, err := i.store.GetUser(userID)
	if err != nil {
		return apperrors.Transient(err, "failed to load user")
	}
	rec := dbmodels.User{
		BaseUserModel: dbmodels.BaseUserModel{ID: userID},
		Phone:         phone,
		Role:          role,
		Name:          strings.TrimSpace(name),
		Status:        models.UserStatusPending,
	}
	if existing != nil {
		if existing.Role != "" && existing.Role != role {
			return apperrors.Validationf("account is already registered as %v", strings.ToLower(existing.Role.ToHuman()))
		}
		rec.CreatedAt = existing.CreatedAt
		rec.PhotoURL = existing.PhotoURL
		rec.Status = existing.Status
		if rec.Phone == "" {
			rec.Phone = existing.Phone
		}
	}
	if err = i.store.SaveUser(rec); err != nil {
		return apperrors.Transient(err, "failed to save user")
	}
	return nil
}

func (i impl) roleProfile(user *dbmodels.User) (*profileapimodels.WorkerView, *profileapimodels.OwnerView, error) {
	switch user.Role {
	case models.UserRoleWorker:
		rec, err := i.store.GetWorker(user.ID)
		if err != nil {
			return nil, nil, apperrors.Transient(err, "failed to load worker profile")
		}
		if rec == nil {
			return nil, nil, nil
		}
		view := profileapimodels.WorkerConvert(*rec)
		return &view, nil, nil
	case models.UserRoleOwner:
		rec, err := i.store.GetOwner(user.ID)
		if err != nil {
			return nil, nil, apperrors.Transient(err, "failed to load owner profile")
		}
		if rec == nil {
			return nil, nil, nil
		}
		view := profileapimodels.OwnerConvert(*rec)
		return nil, &view, nil
	}
	return nil, nil, nil
}
