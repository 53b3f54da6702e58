package http

import (
	"net/http"
)

// getServerVersion reports the running vault version as plain text. Clients
// use it to detect incompatible server deployments before syncing.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}
