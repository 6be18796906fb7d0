package dbmodels

import (
	"labourlink-backend/models"

	"github.com/lib/pq"
)

type User struct {
	BaseUserModel
	Phone    string          `gorm:"type:varchar(32)"`
	Role     models.UserRole `gorm:"type:varchar(20)"`
	Name     string          `gorm:"type:varchar(255)"`
	PhotoURL string
	Status   models.UserStatus `gorm:"type:varchar(20)"`
}

type WorkerProfile struct {
	BaseUserModel
	Name        string `gorm:"type:varchar(255)"`
	Age         int
	State       string         `gorm:"type:varchar(100)"`
	District    string         `gorm:"type:varchar(100)"`
	Skills      pq.StringArray `gorm:"type:text[]"`
	NoShowCount int
	Verified    bool
}

type OwnerProfile struct {
	BaseUserModel
	CompanyName      string `gorm:"type:varchar(255)"`
	OwnerName        string `gorm:"type:varchar(255)"`
	FactoryAddress   string
	FactoryCity      string `gorm:"type:varchar(100)"`
	FactoryState     string `gorm:"type:varchar(100)"`
	Latitude         float64
	Longitude        float64
	Verified         bool
	ProfileCompleted bool
}
