// Package dbtest opens the mysql database used by dal integration tests.
package dbtest

import (
	"os"
	"testing"

	"VideoTube.com/pkg/database"
	"gorm.io/gorm"
)

// DSNEnv names a disposable mysql database, e.g.
// root:root@tcp(127.0.0.1:3306)/videotube_test?charset=utf8mb4&parseTime=true&loc=Local
const DSNEnv = "VIDEOTUBE_TEST_MYSQL_DSN"

// Open migrates and returns the test database, skipping t when DSNEnv is unset.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping mysql integration test", DSNEnv)
	}
	DB, err := database.Open(dsn)
	if err != nil {
		t.Fatalf("open test mysql: %v", err)
	}
	return DB
}
