package profileapimodels

import (
	"labourlink-backend/models"
	reviewapimodels "labourlink-backend/models/api/review"
	dbmodels "labourlink-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type WorkerData struct {
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	State    string   `json:"state"`
	District string   `json:"district"`
	Skills   []string `json:"skills"`
}

func (w WorkerData) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return errors.New("name is required")
	}
	if w.Age < 18 || w.Age > 70 {
		return errors.New("age must be between 18 and 70")
	}
	if strings.TrimSpace(w.State) == "" {
		return errors.New("state is required")
	}
	if len(models.NormalizeSkills(w.Skills)) == 0 {
		return errors.New("at least one skill is required")
	}
	return nil
}

type OwnerData struct {
	CompanyName    string  `json:"company_name"`
	OwnerName      string  `json:"owner_name"`
	FactoryAddress string  `json:"factory_address"`
	FactoryCity    string  `json:"factory_city"`
	FactoryState   string  `json:"factory_state"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

func (o OwnerData) Validate() error {
	if strings.TrimSpace(o.CompanyName) == "" {
		return errors.New("company name is required")
	}
	if strings.TrimSpace(o.OwnerName) == "" {
		return errors.New("owner name is required")
	}
	if strings.TrimSpace(o.FactoryCity) == "" {
		return errors.New("factory city is required")
	}
	if o.Latitude < -90 || o.Latitude > 90 || o.Longitude < -180 || o.Longitude > 180 {
		return errors.New("factory coordinates are out of range")
	}
	return nil
}

type WorkerView struct {
	WorkerData
	NoShowCount int  `json:"no_show_count"`
	Verified    bool `json:"verified"`
}

func WorkerConvert(rec dbmodels.WorkerProfile) WorkerView {
	return WorkerView{
		WorkerData: WorkerData{
			Name:     rec.Name,
			Age:      rec.Age,
			State:    rec.State,
			District: rec.District,
			Skills:   rec.Skills,
		},
		NoShowCount: rec.NoShowCount,
		Verified:    rec.Verified,
	}
}

type OwnerView struct {
	OwnerData
	Verified         bool `json:"verified"`
	ProfileCompleted bool `json:"profile_completed"`
}

func OwnerConvert(rec dbmodels.OwnerProfile) OwnerView {
	return OwnerView{
		OwnerData: OwnerData{
			CompanyName:    rec.CompanyName,
			OwnerName:      rec.OwnerName,
			FactoryAddress: rec.FactoryAddress,
			FactoryCity:    rec.FactoryCity,
			FactoryState:   rec.FactoryState,
			Latitude:       rec.Latitude,
			Longitude:      rec.Longitude,
		},
		Verified:         rec.Verified,
		ProfileCompleted: rec.ProfileCompleted,
	}
}

// MeView is the caller's own account, phone included.
type MeView struct {
	ID        string            `json:"id"`
	Phone     string            `json:"phone"`
	Role      models.UserRole   `json:"role"`
	Name      string            `json:"name"`
	PhotoURL  string            `json:"photo_url"`
	Status    models.UserStatus `json:"status"`
	Worker    *WorkerView       `json:"worker,omitempty"`
	Owner     *OwnerView        `json:"owner,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// PublicProfile is what a counterpart may see; it never carries the phone.
type PublicProfile struct {
	ID       string                        `json:"id"`
	Role     models.UserRole               `json:"role"`
	Name     string                        `json:"name"`
	PhotoURL string                        `json:"photo_url"`
	Worker   *WorkerView                   `json:"worker,omitempty"`
	Owner    *OwnerView                    `json:"owner,omitempty"`
	Rating   reviewapimodels.RatingSummary `json:"rating"`
}

type PhotoView struct {
	PhotoURL string `json:"photo_url"`
}
