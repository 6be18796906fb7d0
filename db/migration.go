package db

import (
	dbmodels "labourlink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	models := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"WorkerProfile", &dbmodels.WorkerProfile{}},
		{"OwnerProfile", &dbmodels.OwnerProfile{}},
		{"Vacancy", &dbmodels.Vacancy{}},
		{"Application", &dbmodels.Application{}},
		{"Notification", &dbmodels.Notification{}},
		{"Review", &dbmodels.Review{}},
		{"Report", &dbmodels.Report{}},
		{"SavedJob", &dbmodels.SavedJob{}},
	}
	for _, m := range models {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", m.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
