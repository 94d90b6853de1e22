package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	routes "inventory-app/internal/app/http"
	"inventory-app/internal/domain/users"
	"inventory-app/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func post(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterCreatesBuyer(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r)

	w := post(r, "/register", gin.H{
		"username":  "alice",
		"email":     "alice@example.com",
		"password1": "sup3rsecret",
		"password2": "sup3rsecret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user users.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.True(t, user.IsBuyer)
	assert.False(t, user.IsSupplier)
	assert.False(t, user.IsAdmin)
	assert.Equal(t, users.RoleBuyer, users.RoleOf(user))
	require.NotNil(t, user.Password)
	assert.NotEqual(t, "sup3rsecret", *user.Password)
}

func TestRegisterValidation(t *testing.T) {
	testutil.OpenTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r)

	// mismatched confirmation
	w := post(r, "/register", gin.H{
		"username":  "alice",
		"password1": "sup3rsecret",
		"password2": "different1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// too weak
	w = post(r, "/register", gin.H{
		"username":  "alice",
		"password1": "short1",
		"password2": "short1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// duplicate username
	w = post(r, "/register", gin.H{
		"username":  "bob",
		"password1": "sup3rsecret",
		"password2": "sup3rsecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = post(r, "/register", gin.H{
		"username":  "bob",
		"password1": "sup3rsecret",
		"password2": "sup3rsecret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	testutil.OpenTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r)

	w := post(r, "/register", gin.H{
		"username":  "alice",
		"password1": "sup3rsecret",
		"password2": "sup3rsecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = post(r, "/login", gin.H{"username": "alice", "password": "wrong-pass1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(r, "/login", gin.H{"username": "alice", "password": "sup3rsecret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		Username     string   `json:"username"`
		Role         string   `json:"role"`
		Capabilities []string `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, "buyer", me.Role)
	assert.Contains(t, me.Capabilities, "can_create_orders")
	assert.NotContains(t, me.Capabilities, "can_manage_orders")
}
