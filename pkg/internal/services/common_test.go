package services_test

import (
	"fmt"
	"testing"

	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDatabaseSeq int

// useTestDatabase points database.C at a fresh in-memory store for one test.
func useTestDatabase(t *testing.T) {
	t.Helper()

	testDatabaseSeq++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDatabaseSeq)
	source, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	pool, err := source.DB()
	require.NoError(t, err)
	pool.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(source))

	prev := database.C
	database.C = source
	t.Cleanup(func() {
		database.C = prev
		_ = pool.Close()
	})
}

func mustAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account := models.Account{Name: name, Nick: name}
	require.NoError(t, database.C.Create(&account).Error)
	return account
}
