// SPDX-License-Identifier: Apache-2.0

package http

import "net/http"

// responseData snapshots a finished response for the logging middleware:
// status code, byte count, and the payload of the last Write call. body is
// not an accumulation; repeated writes overwrite it.
type responseData struct {
	status int
	size   int
	body   []byte
}

// responseWriter decorates [http.ResponseWriter] so middleware can observe
// what the downstream handler wrote without buffering the response.
//
// WriteHeader reaches the underlying writer exactly once; later calls are
// dropped, matching the stdlib contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
	body        []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b and tracks the running byte total. A Write before any
// WriteHeader implies 200, same as the stdlib writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
