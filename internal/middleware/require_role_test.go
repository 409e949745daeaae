package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"

	"github.com/hazed32-ctrl/source-egypt-portal/internal/domain"
)

// fakeUserRepo implements domain.UserRepository with a fixed user set.
type fakeUserRepo struct {
	users map[uint]*domain.User
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, uint) error         { return nil }

func setupRoleRouter(jwtSvc jwt.Service, users domain.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(jwtSvc, nil), RequireRole(users, domain.RoleAdmin))
	r.GET("/admin-only", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func roleTestUser(id uint, role string) *domain.User {
	u := &domain.User{Role: role}
	u.ID = id
	return u
}

func TestRequireRole_AdminAccountPasses(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*domain.User{7: roleTestUser(7, domain.RoleAdmin)}}
	r := setupRoleRouter(&fakeJWTService{token: &jwt.Token{UserID: "7"}}, users)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireRole_ClientAccountForbidden(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*domain.User{7: roleTestUser(7, domain.RoleClient)}}
	r := setupRoleRouter(&fakeJWTService{token: &jwt.Token{UserID: "7"}}, users)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireRole_UnknownAccountForbidden(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*domain.User{}}
	r := setupRoleRouter(&fakeJWTService{token: &jwt.Token{UserID: "7"}}, users)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRequireRole_MalformedUserID_Unauthorized(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]*domain.User{}}
	r := setupRoleRouter(&fakeJWTService{token: &jwt.Token{UserID: "not-a-number"}}, users)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireRole_DemotedAccountLosesAccess(t *testing.T) {
	admin := roleTestUser(7, domain.RoleAdmin)
	users := &fakeUserRepo{users: map[uint]*domain.User{7: admin}}
	r := setupRoleRouter(&fakeJWTService{token: &jwt.Token{UserID: "7"}}, users)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("before demotion: status = %d, want 200", w.Code)
	}

	// The token is still valid; the role check reads the record.
	admin.Role = domain.RoleClient

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("after demotion: status = %d, want 403", w.Code)
	}
}
