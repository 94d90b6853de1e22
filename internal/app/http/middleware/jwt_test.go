package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-app/config"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(1),
		"username": "someone",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return s
}

func gatedRouter(roles ...users.Role) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), RequireRoles(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	r := gatedRouter(users.RoleSupplier)

	w := doGet(r, "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestMalformedTokenRedirectsToLogin(t *testing.T) {
	r := gatedRouter(users.RoleSupplier)

	w := doGet(r, "not-a-jwt")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestExpiredTokenRedirectsToLogin(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(1),
		"username": "someone",
		"role":     "supplier",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)

	w := doGet(gatedRouter(users.RoleSupplier), s)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestAdminBypassesAdmittedSet(t *testing.T) {
	// admitted set does not mention admin at all
	r := gatedRouter(users.RoleBuyer)

	w := doGet(r, signToken(t, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMemberRoleAdmitted(t *testing.T) {
	r := gatedRouter(users.RoleSupplier)

	w := doGet(r, signToken(t, "supplier"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNonMemberRoleForbidden(t *testing.T) {
	r := gatedRouter(users.RoleSupplier)

	w := doGet(r, signToken(t, "buyer"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnknownRoleForbidden(t *testing.T) {
	r := gatedRouter(users.RoleSupplier, users.RoleBuyer)

	w := doGet(r, signToken(t, "intern"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
