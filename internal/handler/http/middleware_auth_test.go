package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quietpage/quietpage/internal/service"
	"github.com/quietpage/quietpage/internal/utils"
	"github.com/quietpage/quietpage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token part", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "no scheme at all", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestAuth_MissingHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuth_MalformedHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ExpiredOrInvalidToken(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "stale.jwt.token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	req.Header.Set("Authorization", "Bearer stale.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrTokenIsExpiredOrInvalid.Error())
}

func TestAuth_ValidToken_SetsUserIDInContext(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().ParseToken(gomock.Any(), "good.jwt.token").
		Return(models.Token{UserID: "user-1"}, nil)

	var gotUserID string
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, found = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	req.Header.Set("Authorization", "Bearer good.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, "user-1", gotUserID)
}
