package api

import (
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/service"
)

// UserHandler handles user registration.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register handles POST /api/users. The body is an opaque profile document
// that must include an email; registering an already-known email is an
// idempotent success with insertedId null.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var profile bson.M
	if err := shared.DecodeJSON(r, &profile); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	reg, err := h.userService.Register(r.Context(), profile)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		if statusCode == http.StatusInternalServerError {
			slog.Error("failed to register user", "error", err)
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	resp := RegisterResponse{Message: "user registered"}
	if reg.Created {
		resp.InsertedID = &reg.InsertedID
	} else {
		resp.Message = "user already exists"
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
