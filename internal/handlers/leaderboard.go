package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vestberry/aoc-leaderboard/internal/logic"
	"github.com/vestberry/aoc-leaderboard/internal/models"
)

const missingConfigMessage = "Missing configuration variables"

// wantsFresh is true when the fresh query parameter is present at all.
func wantsFresh(r *http.Request) bool {
	_, ok := r.URL.Query()["fresh"]
	return ok
}

// GetCached returns the cached leaderboard envelope, refreshing it from the
// upstream API when stale or when fresh is given
// @Summary Get Cached Leaderboard
// @Description Serves the cached upstream payload; refreshes when older than the configured timeout
// @Tags Leaderboard
// @Produce json
// @Param fresh query string false "Force an upstream refresh (any value)"
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} map[string]string
// @Router /api [get]
func (h *Handler) GetCached(w http.ResponseWriter, r *http.Request) {
	res, err := h.leaderboard.Fetch(r.Context(), wantsFresh(r))
	if err != nil {
		h.fetchError(w, err)
		return
	}

	if res.RefreshID != "" {
		w.Header().Set("X-Refresh-ID", res.RefreshID)
	}

	resp := models.APIResponse{OK: true}
	if res.Envelope != nil {
		resp.FetchedAt = res.Envelope.FetchedAt
		resp.Data = res.Envelope.Data
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetView returns the normalized leaderboard ranked for an optional day
// @Summary Get Ranked Leaderboard
// @Description Normalized members ranked by local score, or by completion time of the given day, with first finishers per visible day
// @Tags Leaderboard
// @Produce json
// @Param day query int false "Day to rank by (1-31); omitted or 0 ranks by local score"
// @Param fresh query string false "Force an upstream refresh (any value)"
// @Success 200 {object} models.LeaderboardView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/leaderboard [get]
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	day := 0
	if d := r.URL.Query().Get("day"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 0 || parsed > 31 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid day")
			return
		}
		day = parsed
	}

	view, err := h.leaderboard.View(r.Context(), wantsFresh(r), day)
	if err != nil {
		if errors.Is(err, logic.ErrNoData) {
			h.errorResponse(w, http.StatusNotFound, "No leaderboard data available")
			return
		}
		h.fetchError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, view)
}

func (h *Handler) fetchError(w http.ResponseWriter, err error) {
	if errors.Is(err, logic.ErrMissingConfig) {
		h.logger.Errorw("Leaderboard upstream is not configured", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, missingConfigMessage)
		return
	}

	h.logger.Errorw("Failed to load leaderboard", "error", err)
	h.errorResponse(w, http.StatusInternalServerError, "Failed to load leaderboard")
}
