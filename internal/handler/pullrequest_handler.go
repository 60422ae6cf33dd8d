package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreatePR(w http.ResponseWriter, r *http.Request) {
	var req CreatePRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	pr, err := h.pullRequestService.CreatePR(r.Context(), req.PullRequestID, req.PullRequestName, req.AuthorID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatePRResponse{
		PR: domainPRToHTTP(pr),
	})
}

func (h *Handler) MergePR(w http.ResponseWriter, r *http.Request) {
	var req MergePRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	pr, err := h.pullRequestService.MergePR(r.Context(), req.PullRequestID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MergePRResponse{
		PR: domainPRToHTTP(pr),
	})
}

func (h *Handler) ReassignReviewer(w http.ResponseWriter, r *http.Request) {
	var req ReassignReviewerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	pr, newReviewerID, err := h.pullRequestService.ReassignReviewer(r.Context(), req.PullRequestID, req.OldUserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ReassignReviewerResponse{
		PR:         domainPRToHTTP(pr),
		ReplacedBy: newReviewerID,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "BAD_REQUEST",
			Message: message,
		},
	})
}
