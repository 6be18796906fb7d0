package contactpolicy

import (
	"labourlink-backend/db"
	profilestore "labourlink-backend/lib/profile/store"
	apperrors "labourlink-backend/lib/utils/app-errors"
	"labourlink-backend/models"
)

// Provider decides whether a counterpart's phone number is visible.
// The phone is visible iff the application is accepted, and it is looked
// up again on every call, so a revoked acceptance hides it immediately.
type Provider interface {
	Disclose(status models.ApplicationStatus, userID string) (phone *string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(profilestore.NewInstance(db.DB))
}

func NewInstance(profileStore profilestore.Provider) Provider {
	return impl{
		profileStore: profileStore,
	}
}

type impl struct {
	profileStore profilestore.Provider
}

func (i impl) Disclose(status models.ApplicationStatus, userID string) (*string, error) {
	if !status.IsAccepted() || userID == "" {
		return nil, nil
	}
	user, err := i.profileStore.GetUser(userID)
	if err != nil {
		return nil, apperrors.Transient(err, "failed to load contact")
	}
	if user == nil || user.Phone == "" {
		return nil, nil
	}
	phone := user.Phone
	return &phone, nil
}
