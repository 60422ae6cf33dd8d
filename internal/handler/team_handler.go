package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid request body")
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), httpTeamToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		h.badRequest(w, "team_name is required")
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}
