package http

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/service"
	"github.com/hrdash/hr-dashboard-api/internal/util"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, email, name string, passwordHash []byte, role domain.AccountRole) (*domain.User, error) {
	user := &domain.User{ID: uuid.New(), Email: email, Name: name, PasswordHash: passwordHash, Role: role}
	r.byEmail[email] = user
	return user, nil
}

func (r *stubUserRepo) UpsertGoogleUser(_ context.Context, email, name string) (*domain.User, error) {
	return r.Create(context.Background(), email, name, nil, domain.AccountRoleEmployee)
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, email string, passwordHash []byte) error {
	user, ok := r.byEmail[email]
	if !ok {
		return sql.ErrNoRows
	}
	user.PasswordHash = passwordHash
	return nil
}

type stubSessionRepo struct {
	byToken map[string]*domain.Session
}

func (r *stubSessionRepo) CreateSession(_ context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	session := &domain.Session{UserID: userID, Token: token, ExpiresAt: expiresAt, IsActive: true}
	r.byToken[token] = session
	return session, nil
}

func (r *stubSessionRepo) FindActiveSession(_ context.Context, token string) (*domain.Session, error) {
	session, ok := r.byToken[token]
	if !ok || !session.IsActive {
		return nil, sql.ErrNoRows
	}
	return session, nil
}

func (r *stubSessionRepo) DeactivateSession(_ context.Context, token string) error {
	if session, ok := r.byToken[token]; ok {
		session.IsActive = false
	}
	return nil
}

func newTestAuthService() *service.AuthService {
	users := &stubUserRepo{byEmail: make(map[string]*domain.User)}
	sessions := &stubSessionRepo{byToken: make(map[string]*domain.Session)}
	jwt := util.NewJWTManager("test-secret", time.Hour)
	return service.NewAuthService(users, sessions, nil, nil, jwt, "")
}

func tokenFor(t *testing.T, auth *service.AuthService, role string) string {
	t.Helper()
	email := role + "@example.com"
	if _, err := auth.Register(context.Background(), email, "Test "+role, "secret123", role); err != nil {
		t.Fatalf("Register(%s): %v", role, err)
	}
	result, err := auth.Login(context.Background(), email, "secret123")
	if err != nil {
		t.Fatalf("Login(%s): %v", role, err)
	}
	return result.Token
}

func newGatedEcho(auth *service.AuthService) *echo.Echo {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, util.Message("ok"))
	}
	g := e.Group("/records", RequireAuth(auth))
	g.GET("", ok, RequireCapability(domain.CapabilityViewRecords))
	g.POST("", ok, RequireCapability(domain.CapabilityManageRecords))
	g.DELETE("/1", ok, RequireCapability(domain.CapabilityDeleteRecords))
	return e
}

func doRequest(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	e := newGatedEcho(newTestAuthService())

	if rec := doRequest(e, http.MethodGet, "/records", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: status %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer scheme: status %d, want 401", rec.Code)
	}

	if rec := doRequest(e, http.MethodGet, "/records", "not-a-jwt"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d, want 401", rec.Code)
	}
}

func TestRequireAuthRejectsLoggedOutSession(t *testing.T) {
	auth := newTestAuthService()
	e := newGatedEcho(auth)
	token := tokenFor(t, auth, "EMPLOYEE")

	if rec := doRequest(e, http.MethodGet, "/records", token); rec.Code != http.StatusOK {
		t.Fatalf("live session: status %d, want 200", rec.Code)
	}
	if err := auth.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if rec := doRequest(e, http.MethodGet, "/records", token); rec.Code != http.StatusUnauthorized {
		t.Errorf("after logout: status %d, want 401", rec.Code)
	}
}

func TestCapabilityGates(t *testing.T) {
	auth := newTestAuthService()
	e := newGatedEcho(auth)

	adminToken := tokenFor(t, auth, "ADMIN")
	hrToken := tokenFor(t, auth, "HR")
	employeeToken := tokenFor(t, auth, "EMPLOYEE")

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"admin view", http.MethodGet, "/records", adminToken, http.StatusOK},
		{"admin manage", http.MethodPost, "/records", adminToken, http.StatusOK},
		{"admin delete", http.MethodDelete, "/records/1", adminToken, http.StatusOK},
		{"hr view", http.MethodGet, "/records", hrToken, http.StatusOK},
		{"hr manage", http.MethodPost, "/records", hrToken, http.StatusOK},
		{"hr delete", http.MethodDelete, "/records/1", hrToken, http.StatusForbidden},
		{"employee view", http.MethodGet, "/records", employeeToken, http.StatusOK},
		{"employee manage", http.MethodPost, "/records", employeeToken, http.StatusForbidden},
		{"employee delete", http.MethodDelete, "/records/1", employeeToken, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := doRequest(e, tc.method, tc.path, tc.token); rec.Code != tc.want {
				t.Errorf("status %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
