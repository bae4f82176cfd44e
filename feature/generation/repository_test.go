package generation

import (
	"context"
	"testing"
	"time"

	"item-bias/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	return db
}

var reportRowColumns = []string{
	"id", "seed", "strategy", "mode", "players", "classified", "reserved",
	"placeholders", "trash_removed", "fillers", "warnings", "snapshot_key", "created_at",
}

func TestRepository_Save(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `generation_reports`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Save(context.Background(), &Report{ID: "3b0c7d4e-0000-4000-8000-000000000001", Seed: 7, Strategy: "cluster_bias"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows(reportRowColumns).
		AddRow("abc", 7, "cluster_bias", "cluster", 1, 52, 52, 4, 0, 2, "first\nsecond", "snapshots/abc.json", created)
	mock.ExpectQuery("SELECT \\* FROM `generation_reports` WHERE id = \\?").WillReturnRows(rows)

	report, err := repo.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), report.Seed)
	assert.Equal(t, "cluster", report.Mode)
	assert.Equal(t, 52, report.Reserved)
	assert.Equal(t, []string{"first", "second"}, report.WarningList())
	assert.True(t, created.Equal(report.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `generation_reports` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(reportRowColumns))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	rows := sqlmock.NewRows(reportRowColumns).
		AddRow("b", 2, "major_bias", "major", 1, 40, 41, 0, 0, 0, "", "", time.Now()).
		AddRow("a", 1, "vanilla_bias", "vanilla", 1, 0, 23, 0, 0, 0, "", "", time.Now())
	mock.ExpectQuery("SELECT \\* FROM `generation_reports` ORDER BY created_at DESC LIMIT").WillReturnRows(rows)

	reports, err := repo.List(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "b", reports[0].ID)
	assert.Nil(t, reports[1].WarningList())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `generation_reports` WHERE id = \\?").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestRepository_MigrateAndCheck tests schema creation and verification on sqlite.
func TestRepository_MigrateAndCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("Migrated", func(t *testing.T) {
		repo := NewRepository(setupSQLite(t))
		require.NoError(t, repo.Migrate(ctx))
		assert.NoError(t, repo.Check(ctx))
	})

	t.Run("Missing Table", func(t *testing.T) {
		repo := NewRepository(setupSQLite(t))
		assert.ErrorIs(t, repo.Check(ctx), ErrStaleSchema)
	})

	t.Run("Stale Table", func(t *testing.T) {
		db := setupSQLite(t)
		require.NoError(t, db.Exec("CREATE TABLE generation_reports (id TEXT PRIMARY KEY, seed INTEGER)").Error)
		err := NewRepository(db).Check(ctx)
		assert.ErrorIs(t, err, ErrStaleSchema)
		assert.ErrorContains(t, err, "strategy")
	})
}

// TestRepository_RoundTrip tests save, get, list and delete against sqlite.
func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupSQLite(t))
	require.NoError(t, repo.Migrate(ctx))

	require.NoError(t, repo.Save(ctx, &Report{ID: "one", Seed: 1, Strategy: "major_bias", Mode: "major"}))
	require.NoError(t, repo.Save(ctx, &Report{ID: "two", Seed: 2, Strategy: "dungeon_bias", Mode: "dungeon"}))

	got, err := repo.Get(ctx, "two")
	require.NoError(t, err)
	assert.Equal(t, "dungeon", got.Mode)
	assert.False(t, got.CreatedAt.IsZero())

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "one"))
	_, err = repo.Get(ctx, "one")
	assert.ErrorIs(t, err, ErrNotFound)
}
