package api

import (
	"net/http"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service"
)

// StatsHandler handles task statistics requests.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler with the given dependencies.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary handles GET /api/stats. The response is a tabular array: a
// header row followed by one row per status, in the fixed reporting order.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	caller, owner, ok := callerAndOwner(w, r)
	if !ok {
		return
	}

	summary, err := h.statsService.Summary(r.Context(), caller, owner)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	rows := [][]interface{}{
		{"Task", "Count"},
		{domain.StatusToDo.Label(), summary.ToDo},
		{domain.StatusOngoing.Label(), summary.Ongoing},
		{domain.StatusCompleted.Label(), summary.Completed},
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}
