package http

import (
	"encoding/json"
	"net/http"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/utils"
	"github.com/quietpage/quietpage/models"
)

// getSalt returns the caller's key-derivation salt. A 404 means the user has
// never completed first-login setup; clients treat it as the signal to
// generate and register a fresh salt.
func (h *Handler) getSalt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getSalt").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	record, err := h.services.SaltService.GetSalt(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSalt").Msg("error getting salt")
		writeError(w, "error getting salt", statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// registerSalt creates the caller's salt row. The owner is always taken from
// the session token, never from the body.
func (h *Handler) registerSalt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.registerSalt").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var record models.SaltRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.registerSalt").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.UserID = userID

	if err := h.services.SaltService.RegisterSalt(ctx, record); err != nil {
		log.Err(err).Str("func", "*Handler.registerSalt").Msg("error registering salt")
		writeError(w, "error registering salt", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// replaceSalt overwrites the caller's salt. Rotation only: the client calls
// this after every draft has been re-encrypted under the new key.
func (h *Handler) replaceSalt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.replaceSalt").Msg("no user ID was given")
		writeError(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var record models.SaltRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.replaceSalt").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	record.UserID = userID

	if err := h.services.SaltService.ReplaceSalt(ctx, record); err != nil {
		log.Err(err).Str("func", "*Handler.replaceSalt").Msg("error replacing salt")
		writeError(w, "error replacing salt", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
