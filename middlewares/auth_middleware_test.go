package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medimeal/config"
	"medimeal/models"
	"medimeal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserFinder struct {
	users map[uint]*models.User
}

func (s *stubUserFinder) FindUserByID(_ context.Context, id uint) (*models.User, error) {
	return s.users[id], nil
}

var testCfg = &config.Config{JWTSecret: []byte("test-secret")}

func testRouter(finder *stubUserFinder, roles ...models.Role) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	hits := 0
	r := gin.New()
	grp := r.Group("/", AuthMiddleware(testCfg, finder))
	if len(roles) > 0 {
		grp.Use(RequireRoles(roles...))
	}
	grp.POST("/protected", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c).Email})
	})
	return r, &hits
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r, hits := testRouter(&stubUserFinder{})
	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *hits)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	r, hits := testRouter(&stubUserFinder{})
	w := doRequest(r, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *hits)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(1, []byte("other-secret"))
	require.NoError(t, err)
	r, hits := testRouter(&stubUserFinder{})
	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *hits)
}

func TestAuthMiddlewareRejectsDeactivatedUser(t *testing.T) {
	finder := &stubUserFinder{users: map[uint]*models.User{
		1: {Model: gorm.Model{ID: 1}, Email: "gone@x", Role: models.RolePantry, Active: false},
	}}
	token, err := utils.GenerateJWT(1, testCfg.JWTSecret)
	require.NoError(t, err)

	r, hits := testRouter(finder)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, *hits)
}

func TestRoleGateBlocksWrongRole(t *testing.T) {
	finder := &stubUserFinder{users: map[uint]*models.User{
		1: {Model: gorm.Model{ID: 1}, Email: "pantry@x", Role: models.RolePantry, Active: true},
	}}
	token, err := utils.GenerateJWT(1, testCfg.JWTSecret)
	require.NoError(t, err)

	// manager-only route: the pantry caller never reaches the handler
	r, hits := testRouter(finder, models.RoleManager)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, *hits)
}

func TestRoleGatePassesAllowedRole(t *testing.T) {
	finder := &stubUserFinder{users: map[uint]*models.User{
		1: {Model: gorm.Model{ID: 1}, Email: "mgr@x", Role: models.RoleManager, Active: true},
	}}
	token, err := utils.GenerateJWT(1, testCfg.JWTSecret)
	require.NoError(t, err)

	r, hits := testRouter(finder, models.RoleManager)
	w := doRequest(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *hits)
}

func TestRoleGateAdminCoversEverything(t *testing.T) {
	finder := &stubUserFinder{users: map[uint]*models.User{
		1: {Model: gorm.Model{ID: 1}, Email: "admin@x", Role: models.RoleAdmin, Active: true},
	}}
	token, err := utils.GenerateJWT(1, testCfg.JWTSecret)
	require.NoError(t, err)

	for _, gate := range [][]models.Role{
		{models.RoleManager},
		{models.RolePantry},
		{models.RoleDelivery},
		{models.RoleManager, models.RolePantry},
	} {
		r, hits := testRouter(finder, gate...)
		w := doRequest(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, *hits)
	}
}
