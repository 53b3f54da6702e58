package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithTraceID(t *testing.T, incomingID string) *httptest.ResponseRecorder {
	t.Helper()
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	if incomingID != "" {
		req.Header.Set(traceIDHeader, incomingID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incomingID    string
		wantSameID    bool
		wantFreshUUID bool
	}{
		{name: "client-supplied trace id is reused", incomingID: "sync-attempt-3", wantSameID: true},
		{name: "uuid-shaped incoming id is reused", incomingID: "550e8400-e29b-41d4-a716-446655440000", wantSameID: true},
		{name: "missing id gets a fresh uuid", wantFreshUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := runWithTraceID(t, tt.incomingID)

			require.Equal(t, http.StatusOK, rr.Code)
			responseID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, responseID, "response must always carry a trace id")

			if tt.wantSameID {
				assert.Equal(t, tt.incomingID, responseID)
			}
			if tt.wantFreshUUID {
				_, err := uuid.Parse(responseID)
				assert.NoError(t, err, "generated trace id should be a UUID, got %q", responseID)
			}
		})
	}
}

func TestWithTraceID_GeneratedIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := runWithTraceID(t, "").Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		require.False(t, duplicate, "duplicate trace id %q", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerReachesHandler(t *testing.T) {
	h, _ := newTestHandler(t)

	var requestLogger *logger.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	req.Header.Set(traceIDHeader, "trace-1")

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	require.NotNil(t, requestLogger)
}

func TestWithTraceID_AlwaysCallsNext(t *testing.T) {
	h, _ := newTestHandler(t)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusCreated)
	})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/drafts", nil))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h, _ := newTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withTraceID(next)

	const n = 50
	ids := make(chan string, n)

	for i := 0; i < n; i++ {
		go func() {
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/drafts", nil))
			ids <- rr.Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{})
	for i := 0; i < n; i++ {
		id := <-ids
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, n)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h, _ := newTestHandler(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context())
}
