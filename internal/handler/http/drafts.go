package http

import (
	"encoding/json"
	"net/http"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/utils"
	"github.com/quietpage/quietpage/models"
)

// upload persists a batch of freshly encrypted drafts. Ownership is stamped
// from the session token so a client cannot write into another user's
// corpus.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.upload").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	for i := range req.Drafts {
		req.Drafts[i].UserID = userID
	}

	if err := h.services.DraftService.UploadDrafts(ctx, req.Drafts...); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error uploading drafts")
		writeError(w, "error uploading drafts", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// downloadAll returns the caller's full draft corpus, soft-deleted rows
// included. Password rotation depends on receiving every record.
func (h *Handler) downloadAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.downloadAll").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	drafts, err := h.services.DraftService.DownloadAllDrafts(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadAll").Msg("error downloading drafts")
		writeError(w, "error downloading drafts", statusFromError(err))
		return
	}

	response := models.DownloadResponse{
		Drafts: drafts,
		Length: len(drafts),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// updateCiphers replaces ciphertext triples. Single-draft saves and
// rotation's bulk re-encryption both land here.
func (h *Handler) updateCiphers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.updateCiphers").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.CipherUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateCiphers").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DraftService.UpdateDraftCiphers(ctx, userID, req.Updates...); err != nil {
		log.Err(err).Str("func", "*Handler.updateCiphers").Msg("error updating draft ciphers")
		writeError(w, "error updating draft ciphers", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// deleteDrafts soft-deletes the listed drafts; the rows stay behind for
// rotation.
func (h *Handler) deleteDrafts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteDrafts").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDrafts").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DraftService.DeleteDrafts(ctx, userID, req.DraftIDs...); err != nil {
		log.Err(err).Str("func", "*Handler.deleteDrafts").Msg("error deleting drafts")
		writeError(w, "error deleting drafts", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// purgeDrafts permanently removes the listed drafts.
func (h *Handler) purgeDrafts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.purgeDrafts").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.purgeDrafts").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.DraftService.PurgeDrafts(ctx, userID, req.DraftIDs...); err != nil {
		log.Err(err).Str("func", "*Handler.purgeDrafts").Msg("error purging drafts")
		writeError(w, "error purging drafts", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
