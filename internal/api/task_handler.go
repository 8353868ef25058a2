package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/service"
)

// TaskHandler handles task CRUD and listing requests.
//
// Every route requires the auth middleware; the owner email claimed in the
// email query parameter is passed alongside the verified identity to the
// service, which enforces that they match.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// callerAndOwner extracts the verified caller email from the context and
// the claimed owner email from the query string. The missing-identity case
// means the route was wired without the auth middleware; it is reported as
// 401 rather than panicking.
func callerAndOwner(w http.ResponseWriter, r *http.Request) (caller, owner string, ok bool) {
	caller, ok = shared.UserEmail(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return "", "", false
	}

	owner = r.URL.Query().Get("email")
	if owner == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "The email query parameter is required")
		return "", "", false
	}

	return caller, owner, true
}

// Get handles GET /api/tasks/{id}. A missing or cross-owner task is an
// empty success: 200 with a JSON null body.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, owner, ok := callerAndOwner(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), caller, owner, chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if task == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// List handles GET /api/tasks. Pages are 0-indexed; page defaults to 0 and
// size to 10 when the parameters are absent.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, owner, ok := callerAndOwner(w, r)
	if !ok {
		return
	}

	page, err := queryInt(r, "page", 0)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid page parameter")
		return
	}
	size, err := queryInt(r, "size", 10)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid size parameter")
		return
	}

	result, err := h.taskService.ListTasks(r.Context(), caller, owner, page, size)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Tasks:      result.Tasks,
		TasksCount: result.TotalCount,
	})
}

// Create handles POST /api/tasks. The body is an opaque task document;
// ownership is derived from the verified identity, never from the body.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, owner, ok := callerAndOwner(w, r)
	if !ok {
		return
	}

	var payload bson.M
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := h.taskService.CreateTask(r.Context(), caller, owner, payload)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreateTaskResponse{InsertedID: id})
}

// Update handles PUT /api/tasks/{id}. The body is a partial document;
// only the supplied fields are merged into the task. Matching zero
// documents reports zero counts, not an error.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, owner, ok := callerAndOwner(w, r)
	if !ok {
		return
	}

	var payload bson.M
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.taskService.UpdateTask(r.Context(), caller, owner, chi.URLParam(r, "id"), payload)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateTaskResponse{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, owner, ok := callerAndOwner(w, r)
	if !ok {
		return
	}

	deleted, err := h.taskService.DeleteTask(r.Context(), caller, owner, chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{DeletedCount: deleted})
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
