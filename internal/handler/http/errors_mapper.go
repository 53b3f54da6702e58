package http

import (
	"errors"
	"net/http"

	"github.com/quietpage/quietpage/internal/service"
	"github.com/quietpage/quietpage/internal/store"
	"github.com/quietpage/quietpage/internal/utils"
	"github.com/quietpage/quietpage/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrDraftNotSaved:      http.StatusInternalServerError,
	store.ErrDraftNotFound:      http.StatusNotFound,
	store.ErrSaltNotFound:       http.StatusNotFound,
	store.ErrSaltAlreadyExists:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the uniform JSON error body used across the vault API.
func writeError(w http.ResponseWriter, msg string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
