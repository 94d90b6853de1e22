// Package testutil wires an in-memory database and signed tokens for
// handler-level tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"inventory-app/config"
	"inventory-app/database"
	"inventory-app/internal/domain/store"
	"inventory-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestJWTSecret = "test-secret"

// OpenTestDB opens a fresh in-memory sqlite database named after the test,
// runs migrations, and swaps it in as the global handle for the test's
// lifetime.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.JWT_SECRET = TestJWTSecret

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	old := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = old })

	return db
}

// SignToken issues a token the auth middleware accepts, with the same claim
// set Login produces.
func SignToken(t *testing.T, user users.User) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     string(users.RoleOf(user)),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(TestJWTSecret))
	require.NoError(t, err)
	return s
}

// CreateBuyer inserts a buyer user plus its profile row.
func CreateBuyer(t *testing.T, db *gorm.DB, username, name string) (users.User, store.Buyer) {
	t.Helper()

	user := users.User{Username: username, AuthProvider: "local", IsBuyer: true}
	require.NoError(t, db.Create(&user).Error)

	buyer := store.Buyer{UserID: user.ID, Name: name}
	require.NoError(t, db.Create(&buyer).Error)
	return user, buyer
}

// CreateSupplier inserts a supplier user plus its profile row.
func CreateSupplier(t *testing.T, db *gorm.DB, username, name string) (users.User, store.Supplier) {
	t.Helper()

	user := users.User{Username: username, AuthProvider: "local", IsSupplier: true}
	require.NoError(t, db.Create(&user).Error)

	supplier := store.Supplier{UserID: user.ID, Name: name}
	require.NoError(t, db.Create(&supplier).Error)
	return user, supplier
}

// CreateAdmin inserts an administrator account.
func CreateAdmin(t *testing.T, db *gorm.DB, username string) users.User {
	t.Helper()

	user := users.User{Username: username, AuthProvider: "local", IsAdmin: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}
