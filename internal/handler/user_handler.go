package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) SetIsActive(w http.ResponseWriter, r *http.Request) {
	var req SetIsActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	user, err := h.userService.SetIsActive(r.Context(), req.UserID, req.IsActive)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SetIsActiveResponse{
		User: domainUserToHTTP(user),
	})
}

func (h *Handler) GetReviewPRs(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.badRequest(w, "user_id is required")
		return
	}

	prs, err := h.userService.GetReviewPRs(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetReviewPRsResponse{
		UserID:       userID,
		PullRequests: domainPRShortsToHTTP(prs),
	})
}
