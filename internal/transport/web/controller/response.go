package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError classifies domain errors for the HTTP edge.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrSelfInteraction),
		errors.Is(err, domain.ErrInvalidVote),
		errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, errInvalidPagination):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNoMatch):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnknownUser):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status for err. Internal errors are logged and not echoed.
func writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	logger := domain.LoggerFromContext(ctx)

	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
		w.WriteHeader(status)
		return
	}

	logger.InfoContext(ctx, msg, "error", err, "status", status)
	writeJSON(ctx, w, status, ErrorResponse{Error: userFacingError(err)})
}

func userFacingError(err error) string {
	for _, known := range []error{
		domain.ErrSelfInteraction,
		domain.ErrInvalidVote,
		domain.ErrEmptyMessage,
		errInvalidPagination,
		domain.ErrUnauthenticated,
		domain.ErrNoMatch,
		domain.ErrUnknownUser,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return http.StatusText(statusForError(err))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// pathUserID parses a user id route variable. A malformed id cannot name a user.
func pathUserID(r *http.Request, name string) (domain.UserID, error) {
	id, err := domain.ParseUserID(mux.Vars(r)[name])
	if err != nil {
		return domain.AnonymousUserID, fmt.Errorf("%w: %w", domain.ErrUnknownUser, err)
	}
	return id, nil
}
