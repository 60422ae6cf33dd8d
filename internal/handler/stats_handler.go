package handler

import "net/http"

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	reviewerStats, err := h.statsService.GetReviewerStats(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	prStats, err := h.statsService.GetPRStatsByStatus(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := StatsResponse{
		ReviewerStats: make([]ReviewerStatResponse, 0, len(reviewerStats)),
		PRStats:       make([]PRStatusStatResponse, 0, len(prStats)),
	}
	for _, stat := range reviewerStats {
		resp.ReviewerStats = append(resp.ReviewerStats, ReviewerStatResponse{
			UserID:          stat.UserID,
			Username:        stat.Username,
			AssignmentCount: stat.AssignmentCount,
		})
	}
	for _, stat := range prStats {
		resp.PRStats = append(resp.PRStats, PRStatusStatResponse{
			Status: stat.Status,
			Count:  stat.Count,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
