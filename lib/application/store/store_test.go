package applicationstore

import (
	"labourlink-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestUpdateStatusSQL(t *testing.T) {
	db, err := gorm.Open(postgres.Open("host=localhost user=labourlink dbname=labourlink sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	var updates []string
	err = db.Callback().Update().After("gorm:update").Register("test:collect_sql", func(tx *gorm.DB) {
		updates = append(updates, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	})
	require.NoError(t, err)

	_, err = NewInstance(db).UpdateStatus("app-1", models.ApplicationStatusPending, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	sql := updates[0]
	require.Contains(t, sql, `UPDATE "applications" SET "status"='accepted'`)
	require.Contains(t, sql, `id = 'app-1'`)
	require.Contains(t, sql, `status = 'pending'`)
}
