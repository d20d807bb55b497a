package history

import (
	"context"
	"regexp"
	"testing"
	"time"

	"stock-audit/core/database"
	"stock-audit/core/manifest"
	"stock-audit/core/reconcile"
	"stock-audit/core/report"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	missing, err := repo.Migrate()
	require.NoError(t, err)
	require.Empty(t, missing)
	return repo
}

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

func sampleReport(t *testing.T, created time.Time) report.Report {
	t.Helper()
	s := reconcile.NewSession()
	require.NoError(t, s.SelectMode(reconcile.ModeAudit))
	require.NoError(t, s.LoadExpected(manifest.Expected{"ABC123": {Part: "Widget"}, "DEF456": {}}))
	s.Observe("abc123")
	s.Observe("XYZ999")

	rep := report.New(s.Snapshot(), "manifests/march.csv", manifest.Columns{Serial: "Serial No", Part: "Part"})
	rep.CreatedAt = created
	return rep
}

func TestRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	repo := setupSQLite(t)

	older := sampleReport(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	newer := sampleReport(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, older, "reports/older.json", report.FormatJSON))
	require.NoError(t, repo.Save(ctx, newer, "reports/newer.yaml", report.FormatYAML))

	records, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.ID, records[0].ID)

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	rec, err := repo.Get(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "audit", rec.Mode)
	assert.Equal(t, "reports/older.json", rec.ObjectKey)
	require.NotNil(t, rec.Matched)
	assert.Equal(t, 1, *rec.Matched)
	assert.Equal(t, 1, rec.Extra)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_QuickCaptureCounts(t *testing.T) {
	ctx := context.Background()
	repo := setupSQLite(t)

	s := reconcile.NewSession()
	require.NoError(t, s.SelectMode(reconcile.ModeQuickCapture))
	s.Observe("A1")
	rep := report.New(s.Snapshot(), "", manifest.Columns{})
	require.NoError(t, repo.Save(ctx, rep, "reports/q.json", report.FormatJSON))

	rec, err := repo.Get(ctx, rep.ID)
	require.NoError(t, err)
	assert.Nil(t, rec.Missing)
	assert.Equal(t, 1, rec.Scanned)
}

func TestRepository_MySQL(t *testing.T) {
	ctx := context.Background()

	t.Run("Save", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `audit_records`")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewRepository(db).Save(ctx, sampleReport(t, time.Now()), "reports/r.json", report.FormatJSON)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SaveFailure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `audit_records`")).WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := NewRepository(db).Save(ctx, sampleReport(t, time.Now()), "reports/r.json", report.FormatJSON)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `audit_records`")).
			WillReturnRows(sqlmock.NewRows(recordColumns))

		_, err := NewRepository(db).Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_NoDatabase(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.Migrate()
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.ErrorIs(t, repo.Save(context.Background(), report.Report{}, "", report.FormatJSON), ErrNoDatabase)
	_, err = repo.List(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNoDatabase)
}
