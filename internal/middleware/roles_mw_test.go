package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dochouse/internal/model"
	"dochouse/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeUserRepo is an in-memory UserRepository for guard tests
type fakeUserRepo struct {
	byEmail map[string]*model.User
	lookups int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.lookups++
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) { return nil, nil }

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id int, role string) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) (int64, error) { return 0, nil }

func setClaims(claims *utils.JWTClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

func setupGuardRouter(repo *fakeUserRepo, claims *utils.JWTClaims) (*gin.Engine, *bool) {
	reached := false
	router := gin.New()
	handlers := []gin.HandlerFunc{}
	if claims != nil {
		handlers = append(handlers, setClaims(claims))
	}
	handlers = append(handlers, RequireAdmin(repo), func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	router.GET("/admin", handlers...)
	return router, &reached
}

func TestRequireRole_NoClaims(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*model.User{}}
	router, reached := setupGuardRouter(repo, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
	assert.Zero(t, repo.lookups, "guard must not reach the store without claims")
}

func TestRequireRole_RecordGone(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*model.User{}}
	claims := &utils.JWTClaims{UserID: 1, Email: "ghost@example.com", Role: model.RoleAdmin}
	router, reached := setupGuardRouter(repo, claims)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
}

func TestRequireRole_TokenRoleNotTrusted(t *testing.T) {
	// The stored role is 'user'; the token claims 'admin'. The guard
	// must go by the store.
	repo := &fakeUserRepo{byEmail: map[string]*model.User{
		"bob@example.com": {ID: 1, Email: "bob@example.com", Role: model.RoleUser},
	}}
	claims := &utils.JWTClaims{UserID: 1, Email: "bob@example.com", Role: model.RoleAdmin}
	router, reached := setupGuardRouter(repo, claims)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)
	assert.Equal(t, 1, repo.lookups)
}

func TestRequireRole_StoredAdminAllowed(t *testing.T) {
	// The reverse case: stored role 'admin' wins even though the token
	// was issued while the user still had role 'user'.
	repo := &fakeUserRepo{byEmail: map[string]*model.User{
		"root@example.com": {ID: 2, Email: "root@example.com", Role: model.RoleAdmin},
	}}
	claims := &utils.JWTClaims{UserID: 2, Email: "root@example.com", Role: model.RoleUser}
	router, reached := setupGuardRouter(repo, claims)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}
