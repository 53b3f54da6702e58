package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/quietpage/quietpage/internal/utils"
	"github.com/quietpage/quietpage/models"
)

// uploadHashing verifies the integrity HMAC carried in an upload payload:
// the hex digest of the JSON-serialized draft list must match the "hash"
// field. The body is restored for the downstream handler.
func (h *Handler) uploadHashing(next http.Handler) http.Handler {
	return h.verifyPayloadHash(next, "*Handler.uploadHashing", func(body []byte) (any, string, error) {
		var req models.UploadRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, "", err
		}
		return req.Drafts, req.Hash, nil
	})
}

// updateHashing is the cipher-update counterpart of uploadHashing: the HMAC
// covers the JSON-serialized update list. Rotation pushes its whole
// re-encrypted corpus through this check.
func (h *Handler) updateHashing(next http.Handler) http.Handler {
	return h.verifyPayloadHash(next, "*Handler.updateHashing", func(body []byte) (any, string, error) {
		var req models.CipherUpdateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, "", err
		}
		return req.Updates, req.Hash, nil
	})
}

// verifyPayloadHash reads the body, lets extract pull out the hashed payload
// and the client-declared digest, and rejects the request when the HMAC over
// the re-serialized payload disagrees. The body is rewound before the next
// handler runs.
func (h *Handler) verifyPayloadHash(next http.Handler, fn string, extract func(body []byte) (payload any, declared string, err error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", fn).Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", fn).Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		payload, declared, err := extract(body)
		if err != nil {
			h.logger.Err(err).Str("func", fn).Msg("failed to decode JSON")
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			h.logger.Err(err).Str("func", fn).Msg("failed to marshal payload")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		hashedBody := hex.EncodeToString(utils.Hash(payloadBytes))
		if hashedBody != declared {
			h.logger.Error().Str("func", fn).
				Str("hash from request", declared).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", fn).
			Str("hash from request", declared).
			Str("hashed body", hashedBody).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
