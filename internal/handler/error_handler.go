package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vgrigoryan/pr-review-assigner/internal/domain"
)

// handleError переводит доменные ошибки в HTTP-статусы. Все остальное -
// отказ зависимости (БД недоступна и т.п.), отдается как 500, чтобы клиент
// отличал невалидный запрос от "попробуйте позже"
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	h.log.Errorw("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "TEAM_EXISTS":
		return http.StatusBadRequest
	case "PR_EXISTS", "CANNOT_REASSIGN":
		return http.StatusConflict
	case "NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
