package vacancystore

import (
	dbmodels "labourlink-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB renders statements without a server and collects the UPDATE text.
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
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
	return db, &updates
}

func TestAdjustCountsSQL(t *testing.T) {
	t.Run(`accept moves one slot in a single guarded statement`, func(t *testing.T) {
		db, updates := dryRunDB(t)
		_, err := NewInstance(db).AdjustCounts("vac-1", -1)
		require.NoError(t, err)
		require.Len(t, *updates, 1)
		sql := (*updates)[0]
		require.Contains(t, sql, `UPDATE "vacancies" SET`)
		require.Contains(t, sql, `"worker_count"=worker_count + -1`)
		require.Contains(t, sql, `"filled_count"=filled_count - -1`)
		require.Contains(t, sql, `id = 'vac-1'`)
		require.Contains(t, sql, `worker_count + -1 >= 0`)
		require.Contains(t, sql, `filled_count - -1 >= 0`)
	})
	t.Run(`release guards filled count`, func(t *testing.T) {
		db, updates := dryRunDB(t)
		_, err := NewInstance(db).AdjustCounts("vac-1", 1)
		require.NoError(t, err)
		require.Len(t, *updates, 1)
		require.Contains(t, (*updates)[0], `"worker_count"=worker_count + 1`)
		require.Contains(t, (*updates)[0], `filled_count - 1 >= 0`)
	})
	t.Run(`zero delta writes nothing`, func(t *testing.T) {
		db, updates := dryRunDB(t)
		found, err := NewInstance(db).AdjustCounts("vac-1", 0)
		require.NoError(t, err)
		require.True(t, found)
		require.Empty(t, *updates)
	})
}

func TestSetCountsSQL(t *testing.T) {
	db, updates := dryRunDB(t)
	from := dbmodels.VacancyCounts{WorkerCount: 3, FilledCount: 2}
	to := dbmodels.VacancyCounts{WorkerCount: 4, FilledCount: 1}
	_, err := NewInstance(db).SetCounts("vac-1", from, to)
	require.NoError(t, err)
	require.Len(t, *updates, 1)
	sql := (*updates)[0]
	require.Contains(t, sql, `"filled_count"=1`)
	require.Contains(t, sql, `"worker_count"=4`)
	require.Contains(t, sql, `worker_count = 3 AND filled_count = 2`)
}
