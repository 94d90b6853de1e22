package suppliers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	routes "inventory-app/internal/app/http"
	"inventory-app/internal/domain/store"
	"inventory-app/internal/domain/users"
	"inventory-app/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSupplierCreatesAccount(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r)

	actingUser, _ := testutil.CreateSupplier(t, db, "existing", "Existing Mills")

	w := doJSON(r, http.MethodPost, "/suppliers", testutil.SignToken(t, actingUser), gin.H{
		"name":            "Acme Textiles",
		"address":         "12 Mill Road",
		"username":        "acme",
		"password":        "weave1234",
		"retype_password": "weave1234",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user users.User
	require.NoError(t, db.Where("username = ?", "acme").First(&user).Error)
	assert.True(t, user.IsSupplier)

	var supplier store.Supplier
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&supplier).Error)
	assert.Equal(t, "Acme Textiles", supplier.Name)
}

func TestCreateSupplierPasswordMismatch(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r)

	actingUser, _ := testutil.CreateSupplier(t, db, "existing", "Existing Mills")

	w := doJSON(r, http.MethodPost, "/suppliers", testutil.SignToken(t, actingUser), gin.H{
		"name":            "Acme Textiles",
		"username":        "acme",
		"password":        "weave1234",
		"retype_password": "weave5678",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupplierRoutesGated(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r)

	buyerUser, _ := testutil.CreateBuyer(t, db, "alice", "Alice Retail")

	w := doJSON(r, http.MethodGet, "/suppliers", testutil.SignToken(t, buyerUser), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin bypasses the supplier-only gate
	admin := testutil.CreateAdmin(t, db, "root")
	w = doJSON(r, http.MethodGet, "/suppliers", testutil.SignToken(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteSupplierRemovesAccount(t *testing.T) {
	db := testutil.OpenTestDB(t)
	r := gin.New()
	routes.RegisterRoutes(r)

	actingUser, _ := testutil.CreateSupplier(t, db, "existing", "Existing Mills")
	_, acme := testutil.CreateSupplier(t, db, "acme", "Acme Textiles")

	w := doJSON(r, http.MethodDelete, "/suppliers/2", testutil.SignToken(t, actingUser), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	db.Model(&store.Supplier{}).Where("id = ?", acme.ID).Count(&count)
	assert.Zero(t, count)

	// the login account goes with the profile
	db.Model(&users.User{}).Where("username = ?", "acme").Count(&count)
	assert.Zero(t, count)
}
