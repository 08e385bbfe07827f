// Package testutil содержит хелперы для тестов, работающих с настоящей БД
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurfBooking/internal/infra/storage/database"
	"github.com/m04kA/SMC-TurfBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-TurfBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfBooking/pkg/sqlbuilder"
)

// NewSQLiteDB открывает sqlite во временной директории теста и применяет схему
func NewSQLiteDB(t testing.TB) *dbmetrics.DB {
	t.Helper()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "turf.db")

	sqlDB, err := database.Open(ctx, sqlbuilder.DriverSQLite, path, database.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	require.NoError(t, migrations.Apply(ctx, db, sqlbuilder.DriverSQLite))

	return db
}
