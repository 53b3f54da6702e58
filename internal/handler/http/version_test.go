package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(want)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

func TestGetServerVersion_EmptyVersion(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	assert.Equal(t, "", rec.Body.String())
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	const want = "3.0.0"

	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(want)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

func TestGetServerVersion_ContentTypeNotJSON(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	// Handler writes plain text — Content-Type must NOT be application/json.
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}
