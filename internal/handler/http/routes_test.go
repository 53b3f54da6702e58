package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quietpage/quietpage/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ---- Helper ----

// newTestRouter builds the full routing tree over a mocked service layer.
// ParseToken accepts any token and resolves it to user-1 so that protected
// routes can be exercised.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{UserID: "user-1"}, nil).AnyTimes()
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()
	mocks.drafts.EXPECT().DownloadAllDrafts(gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()
	mocks.salts.EXPECT().GetSalt(gomock.Any(), gomock.Any()).
		Return(models.SaltRecord{UserID: "user-1", Salt: "c2FsdA=="}, nil).AnyTimes()

	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/register"},
		{http.MethodPost, "/api/user/login"},
		{http.MethodGet, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"public route must not require a token: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/password"},
		{http.MethodGet, "/api/user/salt"},
		{http.MethodPost, "/api/user/salt"},
		{http.MethodPut, "/api/user/salt"},
		{http.MethodPost, "/api/drafts"},
		{http.MethodGet, "/api/drafts"},
		{http.MethodPut, "/api/drafts"},
		{http.MethodDelete, "/api/drafts"},
		{http.MethodPost, "/api/drafts/purge"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/drafts"},
		{http.MethodGet, "/api/user/salt"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"valid token should not result in 401")
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
		{http.MethodPatch, "/api/user/register"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 404, not 405 ----

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/version"},
		{http.MethodPut, "/api/user/register"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"unsupported method should be hidden behind 404")
		})
	}
}
