// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gzipDecompress(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

const draftBatchJSON = `{"drafts":[{"id":"draft-1","ciphertext_content":"b3BhcXVl","iv":"AAAAAAAAAAAAAAAA"}]}`

func TestGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, r.Header.Get("Content-Encoding"), "encoding header must be stripped after decompression")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})

	tests := []struct {
		name           string
		acceptEncoding string
		compressBody   bool
		wantCompressed bool
	}{
		{name: "plain request, plain response"},
		{name: "plain request, gzip response", acceptEncoding: "gzip", wantCompressed: true},
		{name: "gzip request, plain response", compressBody: true},
		{name: "gzip both ways", acceptEncoding: "gzip", compressBody: true, wantCompressed: true},
		{name: "accept-encoding lists several codings", acceptEncoding: "deflate, gzip, br", wantCompressed: true},
		{name: "accept-encoding with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantCompressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader = strings.NewReader(draftBatchJSON)
			if tt.compressBody {
				body = gzipCompress(t, []byte(draftBatchJSON))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/drafts", body)
			if tt.compressBody {
				req.Header.Set("Content-Encoding", "gzip")
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantCompressed {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, draftBatchJSON, gzipDecompress(t, rr.Body))
			} else {
				assert.NotEqual(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, draftBatchJSON, rr.Body.String())
			}
		})
	}
}

func TestGZip_InvalidCompressedBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on a broken body")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/drafts", strings.NewReader("not gzipped at all"))
	req.Header.Set("Content-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGZip_StatusCodePreserved(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"stored"}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/drafts", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"status":"stored"}`, gzipDecompress(t, rr.Body))
}

func TestGZip_PoolReuseAcrossRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	})
	middleware := withGZip(next)

	for i := 0; i < 10; i++ {
		payload := []byte(draftBatchJSON + strings.Repeat(".", i))

		req := httptest.NewRequest(http.MethodPost, "/api/drafts", gzipCompress(t, payload))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip")

		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
		assert.Equal(t, string(payload), gzipDecompress(t, rr.Body), "request %d round-trip mismatch", i)
	}
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(draftBatchJSON))
	})
	middleware := withGZip(next)

	const goroutines = 50
	done := make(chan struct{}, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
			req.Header.Set("Accept-Encoding", "gzip")

			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, draftBatchJSON, gzipDecompress(t, rr.Body))
		}()
	}

	for i := 0; i < goroutines; i++ {
		<-done
	}
}

func TestGZip_CompressionShrinksRepetitivePayload(t *testing.T) {
	// A draft batch is mostly JSON scaffolding and base64; it should shrink.
	payload := strings.Repeat(draftBatchJSON, 200)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/drafts", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(payload)/10)
}

func TestPooledBodyReader_Close(t *testing.T) {
	released := false
	body := &pooledBodyReader{
		Reader:  strings.NewReader("ciphertext"),
		release: func() { released = true },
	}

	require.NoError(t, body.Close())
	assert.True(t, released)

	noRelease := &pooledBodyReader{Reader: strings.NewReader("ciphertext")}
	assert.NoError(t, noRelease.Close())
}
